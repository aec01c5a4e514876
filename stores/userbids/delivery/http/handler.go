package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/delivery"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/middleware"
)

type handler struct {
	userBids domain.UserBidsUseCase
}

func New(e *echo.Echo, userBids domain.UserBidsUseCase) {
	h := &handler{userBids}

	g := e.Group("/api")
	g.GET("/userbids/:address", h.get, middleware.IsValidAddress("address"))
	g.GET("/userbidsinfo/:address", h.getInfo, middleware.IsValidAddress("address"))
	g.GET("/userbidsrefresh/:address", h.refresh, middleware.IsValidAddress("address"))
}

func addressParam(c echo.Context) domain.Address {
	return domain.Address(c.Param("address")).ToLower()
}

// get godoc
//
//	@Description	Returns the cached bids of an address, empty when never refreshed.
//	@Tags			userbids
//	@Produce		json
//	@Param			address	path		string	true	"bidder address"
//	@Success		200		{object}	domain.UserBids
//	@Failure		400
//	@Failure		500
//	@Router			/api/userbids/{address} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bids, err := h.userBids.Get(ctx, addressParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bids)
}

func (h *handler) getInfo(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	info, err := h.userBids.GetInfo(ctx, addressParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

// refresh godoc
//
//	@Description	Rebuilds the bids of an address from the contract.
//	@Tags			userbids
//	@Produce		json
//	@Param			address	path		string	true	"bidder address"
//	@Success		200		{object}	domain.UserBids
//	@Failure		400
//	@Failure		500
//	@Router			/api/userbidsrefresh/{address} [get]
func (h *handler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	bids, err := h.userBids.Refresh(ctx, addressParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bids)
}
