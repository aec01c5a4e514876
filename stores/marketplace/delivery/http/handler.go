package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/delivery"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/middleware"
)

type handler struct {
	marketplace domain.MarketplaceContract
	auction     domain.AuctionUseCase
}

// New registers the raw contract reads. Nothing here touches the store.
func New(e *echo.Echo, marketplace domain.MarketplaceContract, auction domain.AuctionUseCase) {
	h := &handler{marketplace, auction}

	g := e.Group("/api/bsc")
	g.GET("/auctionslength", h.auctionsLength)
	g.GET("/auction/:id", h.getAuction, middleware.IsValidInt("id"))
	g.GET("/bidbalance/:id/:address", h.bidBalance, middleware.IsValidInt("id"), middleware.IsValidAddress("address"))
	g.GET("/highestbid/:id", h.highestBid, middleware.IsValidInt("id"))
	g.GET("/getuserbidslength/:address", h.userBidsLength, middleware.IsValidAddress("address"))
	g.GET("/getuserbids/:address", h.userBids, middleware.IsValidAddress("address"))
}

func idParam(c echo.Context) domain.AuctionId {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return domain.AuctionId(id)
}

func addressParam(c echo.Context) domain.Address {
	return domain.Address(c.Param("address")).ToLower()
}

func (h *handler) auctionsLength(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	n, err := h.marketplace.AuctionsLength(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, n)
}

// getAuction godoc
//
//	@Description	Reads auctions(id) from the contract without touching the store.
//	@Tags			chain
//	@Produce		json
//	@Param			id	path		int	true	"auction id"
//	@Success		200	{object}	domain.OnChainAuction
//	@Failure		400
//	@Failure		500
//	@Router			/api/bsc/auction/{id} [get]
func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a, err := h.marketplace.GetAuction(ctx, idParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) bidBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	v, err := h.marketplace.BidBalance(ctx, idParam(c), addressParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

func (h *handler) highestBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	v, err := h.auction.ChainHighestBid(ctx, idParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, v)
}

func (h *handler) userBidsLength(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	n, err := h.marketplace.UserBidsLength(ctx, addressParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, n)
}

// userBids reads every page, same as a user bids refresh but without storing
func (h *handler) userBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := addressParam(c)

	n, err := h.marketplace.UserBidsLength(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	bids := make([]domain.UserBid, 0, n)
	for cursor := int64(0); cursor < n; cursor += domain.UserBidsPageSize {
		page, err := h.marketplace.UserBids(ctx, address, cursor, domain.UserBidsPageSize)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
		}
		bids = append(bids, page...)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, domain.UserBids{Address: address, Bids: bids})
}
