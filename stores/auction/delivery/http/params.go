package http

import (
	"fmt"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/auctionindexer/domain"
)

type listParams struct {
	AuctionId     *string         `query:"auctionId" validate:"omitempty,id_list"`
	NftToken      *domain.Address `query:"nftToken" validate:"omitempty,eth_addr"`
	NftTokenId    *int64          `query:"nftTokenId"`
	Owner         *domain.Address `query:"owner" validate:"omitempty,eth_addr"`
	Token         *domain.Address `query:"token" validate:"omitempty,eth_addr"`
	IsSettled     *string         `query:"isSettled"`
	HighestBidder *domain.Address `query:"highestBidder" validate:"omitempty,eth_addr"`
	AuctionType   *uint8          `query:"auctionType"`
	IsSold        *string         `query:"isSold"`
	LastToken     *domain.Address `query:"lastToken" validate:"omitempty,eth_addr"`
	Series        *string         `query:"series"`
	Rarity        *int            `query:"rarity"`
	Tier          *int            `query:"tier"`
	EndsBefore    *int64          `query:"endsBefore"`
	EndsAfter     *int64          `query:"endsAfter"`

	// both spellings are accepted
	OrderBy    string `query:"orderby" validate:"omitempty,oneof=endTime auctionId nftTokenId rarity tier"`
	OrderByAlt string `query:"orderBy" validate:"omitempty,oneof=endTime auctionId nftTokenId rarity tier"`
	Direction  string `query:"direction" validate:"omitempty,oneof=asc desc"`
	Limit      *int64 `query:"limit"`
	StartAfter *int64 `query:"startAfter"`
}

var validListParams = map[string]bool{
	"auctionId": true, "nftToken": true, "nftTokenId": true, "owner": true, "token": true,
	"isSettled": true, "highestBidder": true, "auctionType": true, "isSold": true, "lastToken": true,
	"series": true, "rarity": true, "tier": true, "endsBefore": true, "endsAfter": true,
	"orderby": true, "orderBy": true, "direction": true, "limit": true, "startAfter": true,
}

func validListParamNames() string {
	names := make([]string, 0, len(validListParams))
	for k := range validListParams {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// anything but "false" filters for true
func parseFlag(s string) bool {
	return strings.ToLower(s) != "false"
}

func parseListParams(c echo.Context) ([]domain.AuctionFindAllOptionsFunc, error) {
	for k := range c.QueryParams() {
		if !validListParams[k] {
			return nil, fmt.Errorf("invalid param %s. valid params are %s", k, validListParamNames())
		}
	}

	p := &listParams{}
	if err := c.Bind(p); err != nil {
		return nil, xerrors.Errorf("invalid params: %w", domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return nil, err
	}

	opts := []domain.AuctionFindAllOptionsFunc{}

	if p.AuctionId != nil {
		ids, err := parseIds(*p.AuctionId)
		if err != nil {
			return nil, fmt.Errorf("invalid auctionId %s", *p.AuctionId)
		}
		opts = append(opts, domain.AuctionWithIds(ids...))
	}
	if p.NftToken != nil {
		opts = append(opts, domain.AuctionWithNftToken(*p.NftToken))
	}
	if p.NftTokenId != nil {
		opts = append(opts, domain.AuctionWithNftTokenId(*p.NftTokenId))
	}
	if p.Owner != nil {
		opts = append(opts, domain.AuctionWithOwner(*p.Owner))
	}
	if p.Token != nil {
		opts = append(opts, domain.AuctionWithToken(*p.Token))
	}
	if p.IsSettled != nil {
		opts = append(opts, domain.AuctionWithSettled(parseFlag(*p.IsSettled)))
	}
	if p.HighestBidder != nil {
		opts = append(opts, domain.AuctionWithBidder(*p.HighestBidder))
	}
	if p.AuctionType != nil {
		opts = append(opts, domain.AuctionWithType(*p.AuctionType))
	}
	if p.IsSold != nil {
		opts = append(opts, domain.AuctionWithSold(parseFlag(*p.IsSold)))
	}
	if p.LastToken != nil {
		opts = append(opts, domain.AuctionWithLastToken(*p.LastToken))
	}
	if p.Series != nil {
		opts = append(opts, domain.AuctionWithSeries(*p.Series))
	}
	if p.Rarity != nil {
		opts = append(opts, domain.AuctionWithRarity(*p.Rarity))
	}
	if p.Tier != nil {
		opts = append(opts, domain.AuctionWithTier(*p.Tier))
	}
	if p.EndsBefore != nil {
		opts = append(opts, domain.AuctionWithEndsBefore(*p.EndsBefore))
	}
	if p.EndsAfter != nil {
		opts = append(opts, domain.AuctionWithEndsAfter(*p.EndsAfter))
	}

	dir := domain.SortDirAsc
	if p.Direction == "desc" {
		dir = domain.SortDirDesc
	}

	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = p.OrderByAlt
	}
	// a filter on auctionId or nftTokenId narrows the result enough to keep the store's order
	if orderBy == "" && p.AuctionId == nil && p.NftTokenId == nil {
		orderBy = "auctionId"
	}
	if orderBy != "" {
		opts = append(opts, domain.AuctionWithSort(orderBy, dir))
	}

	limit := int64(20)
	if p.Limit != nil {
		limit = *p.Limit
		if limit < 0 {
			limit = 0
		}
	}
	opts = append(opts, domain.AuctionWithLimit(limit))

	if p.StartAfter != nil && orderBy != "" {
		opts = append(opts, domain.AuctionWithStartAfter(*p.StartAfter))
	}

	return opts, nil
}
