package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	e *echo.Echo
}

func (s *cacheMiddlewareSuite) SetupSuite() {
	SetupCache(nil)
	s.e = echo.New()
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(target string, status int, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	h := func(c echo.Context) error {
		return c.String(status, body)
	}
	s.Require().NoError(CacheHttp(30 * time.Second)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	rec := s.serve("/hit", http.StatusOK, "Hello, World")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("MISS", rec.Header().Get(HeaderXCache))

	rec = s.serve("/hit", http.StatusOK, "Hello, again")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("HIT", rec.Header().Get(HeaderXCache))
}

func (s *cacheMiddlewareSuite) TestParamOrderSharesKey() {
	s.serve("/order?b=2&a=1", http.StatusOK, "first")

	rec := s.serve("/order?a=1&b=2", http.StatusOK, "second")
	s.Equal("first", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestFailureNotCached() {
	rec := s.serve("/fail", http.StatusInternalServerError, "boom")
	s.Equal(http.StatusInternalServerError, rec.Code)

	rec = s.serve("/fail", http.StatusOK, "ok")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestPathsDoNotCollide() {
	s.serve("/a?x=1", http.StatusOK, "a")

	rec := s.serve("/b?x=1", http.StatusOK, "b")
	s.Equal("b", rec.Body.String())
}
