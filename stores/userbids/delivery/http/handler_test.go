package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/domain/mocks"
)

const bidder = "0x00000000000000000000000000000000000ABC00"

type userBidsHandlerSuite struct {
	suite.Suite

	userBids *mocks.UserBidsUseCase
	e        *echo.Echo
}

func (s *userBidsHandlerSuite) SetupTest() {
	s.userBids = &mocks.UserBidsUseCase{}
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(s.e, s.userBids)
}

func (s *userBidsHandlerSuite) TearDownTest() {
	s.userBids.AssertExpectations(s.T())
}

func TestUserBidsHandler(t *testing.T) {
	suite.Run(t, new(userBidsHandlerSuite))
}

func (s *userBidsHandlerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *userBidsHandlerSuite) TestGetLowercasesAddress() {
	addr := domain.Address(bidder).ToLower()
	s.userBids.On("Get", mock.Anything, addr).Return(&domain.UserBids{
		Address: addr,
		Bids:    []domain.UserBid{{AuctionId: 3, Amount: decimal.RequireFromString("1.5")}},
	}, nil).Once()

	rec := s.get("/api/userbids/" + bidder)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"auctionId":3`)
}

func (s *userBidsHandlerSuite) TestRefresh() {
	addr := domain.Address(bidder).ToLower()
	s.userBids.On("Refresh", mock.Anything, addr).Return(&domain.UserBids{Address: addr, Bids: []domain.UserBid{}}, nil).Once()

	rec := s.get("/api/userbidsrefresh/" + bidder)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *userBidsHandlerSuite) TestInvalidAddress() {
	rec := s.get("/api/userbidsinfo/0x1234")
	s.Equal(http.StatusBadRequest, rec.Code)
}
