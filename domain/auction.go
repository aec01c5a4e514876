package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionindexer/base/ctx"
)

type AuctionId int64

func (id AuctionId) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// NftData is the denormalized metadata of the auctioned nft
type NftData struct {
	Id          string `json:"id" bson:"id"`
	Series      string `json:"series" bson:"series"`
	Description string `json:"description" bson:"description"`
	ExternalUrl string `json:"external_url" bson:"external_url"`
	Image       string `json:"image" bson:"image"`
	Name        string `json:"name" bson:"name"`
	Rarity      int    `json:"rarity" bson:"rarity"`
	Tier        int    `json:"tier" bson:"tier"`
}

type Auction struct {
	AuctionId       AuctionId       `json:"auctionId" bson:"auctionId"`
	NftToken        Address         `json:"nftToken" bson:"nftToken"`
	NftTokenId      int64           `json:"nftTokenId" bson:"nftTokenId"`
	Owner           Address         `json:"owner" bson:"owner"`
	Token           Address         `json:"token" bson:"token"`
	TargetPrice     decimal.Decimal `json:"targetPrice" bson:"targetPrice"`
	ReservePrice    decimal.Decimal `json:"reservePrice" bson:"reservePrice"`
	EndTime         int64           `json:"endTime" bson:"endTime"`
	MinIncrement    decimal.Decimal `json:"minIncrement" bson:"minIncrement"`
	IsSettled       bool            `json:"isSettled" bson:"isSettled"`
	HighestBidder   Address         `json:"highestBidder" bson:"highestBidder"`
	AuctionType     uint8           `json:"auctionType" bson:"auctionType"`
	IsSold          bool            `json:"isSold" bson:"isSold"`
	HighestBid      decimal.Decimal `json:"highestBid" bson:"highestBid"`
	FinalHighestBid decimal.Decimal `json:"finalHighestBid" bson:"finalHighestBid"`
	LastPrice       decimal.Decimal `json:"lastPrice" bson:"lastPrice"`
	LastToken       Address         `json:"lastToken" bson:"lastToken"`
	NftData         *NftData        `json:"nftData,omitempty" bson:"nftData,omitempty"`
}

// OnChainAuction is the raw `auctions(id)` snapshot, amounts already converted
type OnChainAuction struct {
	NftToken      Address         `json:"nftToken"`
	NftTokenId    int64           `json:"nftTokenId"`
	Owner         Address         `json:"owner"`
	Token         Address         `json:"token"`
	TargetPrice   decimal.Decimal `json:"targetPrice"`
	ReservePrice  decimal.Decimal `json:"reservePrice"`
	EndTime       int64           `json:"endTime"`
	MinIncrement  decimal.Decimal `json:"minIncrement"`
	IsSettled     bool            `json:"isSettled"`
	HighestBidder Address         `json:"highestBidder"`
	AuctionType   uint8           `json:"auctionType"`
	IsSold        bool            `json:"isSold"`
}

// NftKey identifies one nft across all of its auctions
type NftKey struct {
	NftToken   Address
	NftTokenId int64
}

func (a *Auction) NftKey() NftKey {
	return NftKey{NftToken: a.NftToken, NftTokenId: a.NftTokenId}
}

type AuctionFindAllOptions struct {
	SortBy      *string
	SortDir     *SortDir
	Limit       *int64
	StartAfter  interface{}
	AuctionIds  []AuctionId
	NftToken    *Address
	NftTokenId  *int64
	Owner       *Address
	Token       *Address
	IsSettled   *bool
	IsSold      *bool
	Bidder      *Address
	AuctionType *uint8
	LastToken   *Address
	Series      *string
	Rarity      *int
	Tier        *int
	EndsBefore  *int64
	EndsAfter   *int64
}

type AuctionFindAllOptionsFunc func(*AuctionFindAllOptions) error

func GetAuctionFindAllOptions(opts ...AuctionFindAllOptionsFunc) (AuctionFindAllOptions, error) {
	res := AuctionFindAllOptions{}
	for _, o := range opts {
		if err := o(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func AuctionWithSort(sortBy string, sortDir SortDir) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.SortBy = &sortBy
		o.SortDir = &sortDir
		return nil
	}
}

func AuctionWithLimit(limit int64) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.Limit = &limit
		return nil
	}
}

// AuctionWithStartAfter continues a listing after the given value of the sort field
func AuctionWithStartAfter(v interface{}) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.StartAfter = v
		return nil
	}
}

func AuctionWithIds(ids ...AuctionId) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.AuctionIds = ids
		return nil
	}
}

func AuctionWithNft(nftToken Address, nftTokenId int64) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		nftToken = nftToken.ToLower()
		o.NftToken = &nftToken
		o.NftTokenId = &nftTokenId
		return nil
	}
}

func AuctionWithNftToken(nftToken Address) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		nftToken = nftToken.ToLower()
		o.NftToken = &nftToken
		return nil
	}
}

func AuctionWithNftTokenId(id int64) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.NftTokenId = &id
		return nil
	}
}

func AuctionWithOwner(owner Address) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		owner = owner.ToLower()
		o.Owner = &owner
		return nil
	}
}

func AuctionWithToken(token Address) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		token = token.ToLower()
		o.Token = &token
		return nil
	}
}

func AuctionWithSettled(settled bool) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.IsSettled = &settled
		return nil
	}
}

func AuctionWithSold(sold bool) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.IsSold = &sold
		return nil
	}
}

func AuctionWithBidder(bidder Address) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		bidder = bidder.ToLower()
		o.Bidder = &bidder
		return nil
	}
}

func AuctionWithType(t uint8) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.AuctionType = &t
		return nil
	}
}

func AuctionWithLastToken(token Address) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		token = token.ToLower()
		o.LastToken = &token
		return nil
	}
}

func AuctionWithSeries(series string) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.Series = &series
		return nil
	}
}

func AuctionWithRarity(rarity int) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.Rarity = &rarity
		return nil
	}
}

func AuctionWithTier(tier int) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.Tier = &tier
		return nil
	}
}

func AuctionWithEndsBefore(ts int64) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.EndsBefore = &ts
		return nil
	}
}

func AuctionWithEndsAfter(ts int64) AuctionFindAllOptionsFunc {
	return func(o *AuctionFindAllOptions) error {
		o.EndsAfter = &ts
		return nil
	}
}

// ScanReport is the summary of a full-table consistency scan
type ScanReport struct {
	Total   int64       `json:"total"`
	Missing []AuctionId `json:"missing"`
	Fixed   []AuctionId `json:"fixed"`
	Failed  []AuctionId `json:"failed"`
	GivenUp []AuctionId `json:"givenUp"`
}

type AuctionRepo interface {
	FindOne(ctx.Ctx, AuctionId) (*Auction, error)
	Exists(ctx.Ctx, AuctionId) (bool, error)
	Upsert(ctx.Ctx, *Auction) error
	FindAll(ctx.Ctx, ...AuctionFindAllOptionsFunc) ([]*Auction, error)
}

type AuctionUseCase interface {
	// Get returns ErrNotFound when the auction has never been stored
	Get(ctx.Ctx, AuctionId) (*Auction, error)
	// GetOrBuild reconstructs and stores an absent auction
	GetOrBuild(ctx.Ctx, AuctionId) (*Auction, error)
	FindAll(ctx.Ctx, ...AuctionFindAllOptionsFunc) ([]*Auction, error)

	ApplyEvent(ctx.Ctx, MarketplaceEvent) error
	Rebuild(c ctx.Ctx, id AuctionId, onList bool) (*Auction, error)
	RefreshAuction(ctx.Ctx, AuctionId) (bool, error)
	// ChainHighestBid derives the leading amount from the live contract state
	ChainHighestBid(ctx.Ctx, AuctionId) (decimal.Decimal, error)

	AuctionsForNft(ctx.Ctx, NftKey) ([]*Auction, error)
	RefreshNftSalesData(ctx.Ctx, NftKey) error
	PropagateLastSale(c ctx.Ctx, nft NftKey, price decimal.Decimal, token Address) error

	FixMissingAuctions(ctx.Ctx) (*ScanReport, error)
}
