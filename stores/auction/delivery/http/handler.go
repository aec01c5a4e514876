package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/delivery"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/middleware"
)

type handler struct {
	auction domain.AuctionUseCase
}

// New registers the auction routes, listTtl 0 disables the listing cache
func New(e *echo.Echo, auction domain.AuctionUseCase, listTtl time.Duration) {
	h := &handler{auction}

	g := e.Group("/api")

	list := []echo.MiddlewareFunc{}
	if listTtl > 0 {
		list = append(list, middleware.CacheHttp(listTtl))
	}
	g.GET("/auction", h.list, list...)

	g.GET("/auctionraw/:id", h.getRaw, middleware.IsValidInt("id"))
	g.GET("/auction/:id", h.get, middleware.IsValidInt("id"))
	g.GET("/auctionrefresh/:id", h.refresh, middleware.IsValidInt("id"))

	g.GET("/auctionsfornft/:id/:address", h.auctionsForNft, middleware.IsValidInt("id"), middleware.IsValidAddress("address"))
	g.GET("/nftsalesdatarefresh/:id/:address", h.refreshNftSalesData, middleware.IsValidInt("id"), middleware.IsValidAddress("address"))

	g.GET("/fixmissingauctions", h.fixMissingAuctions)
}

func auctionIdParam(c echo.Context) domain.AuctionId {
	// validated by middleware.IsValidInt
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return domain.AuctionId(id)
}

func nftParam(c echo.Context) domain.NftKey {
	tokenId, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	return domain.NftKey{
		NftToken:   domain.Address(c.Param("address")).ToLower(),
		NftTokenId: tokenId,
	}
}

func (h *handler) getRaw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a, err := h.auction.Get(ctx, auctionIdParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

// get godoc
//
//	@Description	Returns the stored auction, reconstructing it from the contract when it was never indexed.
//	@Tags			auction
//	@Produce		json
//	@Param			id	path		int	true	"auction id"
//	@Success		200	{object}	domain.Auction
//	@Failure		400
//	@Failure		500
//	@Router			/api/auction/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	a, err := h.auction.GetOrBuild(ctx, auctionIdParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	changed, err := h.auction.RefreshAuction(ctx, auctionIdParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]bool{"changed": changed})
}

func (h *handler) auctionsForNft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.AuctionsForNft(ctx, nftParam(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) refreshNftSalesData(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.auction.RefreshNftSalesData(ctx, nftParam(c)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return c.String(http.StatusOK, "success")
}

func (h *handler) fixMissingAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	report, err := h.auction.FixMissingAuctions(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}

// list godoc
//
//	@Description	Lists stored auctions. Filters are equality matches unless noted, unknown params are rejected.
//	@Tags			auction
//	@Produce		json
//	@Param			auctionId		query		string	false	"auction id or comma separated ids"	example(1,2,3)
//	@Param			nftToken		query		string	false	"nft contract address"
//	@Param			nftTokenId		query		int		false	"nft token id"
//	@Param			owner			query		string	false	"auction owner"
//	@Param			token			query		string	false	"payment token"
//	@Param			isSettled		query		bool	false	"settled auctions"
//	@Param			highestBidder	query		string	false	"current leading bidder"
//	@Param			auctionType		query		int		false	"contract auction type"
//	@Param			isSold			query		bool	false	"sold auctions"
//	@Param			lastToken		query		string	false	"payment token of the last sale"
//	@Param			series			query		string	false	"nft series"
//	@Param			rarity			query		int		false	"nft rarity"
//	@Param			tier			query		int		false	"nft tier"
//	@Param			endsBefore		query		int		false	"endTime upper bound, unix seconds"
//	@Param			endsAfter		query		int		false	"endTime lower bound, unix seconds"
//	@Param			orderby			query		string	false	"sort field"	Enums(endTime, auctionId, nftTokenId, rarity, tier)
//	@Param			direction		query		string	false	"sort direction"	Enums(asc, desc)
//	@Param			limit			query		int		false	"page size, 0 for all"	example(20)
//	@Param			startAfter		query		int		false	"value of the sort field to continue after"
//	@Success		200				{array}		domain.Auction
//	@Failure		400
//	@Failure		500
//	@Router			/api/auction [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts, err := parseListParams(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.auction.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func parseIds(s string) ([]domain.AuctionId, error) {
	pieces := strings.Split(s, ",")
	ids := make([]domain.AuctionId, 0, len(pieces))
	for _, p := range pieces {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, domain.AuctionId(id))
	}
	return ids, nil
}
