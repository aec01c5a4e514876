package domain

import (
	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionindexer/base/ctx"
)

// MarketplaceContract is the typed read-only view of the auction contract. Every call goes through the retry invoker.
type MarketplaceContract interface {
	AuctionsLength(ctx.Ctx) (int64, error)
	// GetAuction fails with ContractCallFailed wrapping ErrNullNftToken when the node keeps returning an empty auction
	GetAuction(ctx.Ctx, AuctionId) (*OnChainAuction, error)
	LastPrice(c ctx.Ctx, nftToken Address, nftTokenId int64) (decimal.Decimal, error)
	LastToken(c ctx.Ctx, nftToken Address, nftTokenId int64) (Address, error)
	FinalHighestBid(ctx.Ctx, AuctionId) (decimal.Decimal, error)
	BidBalance(c ctx.Ctx, id AuctionId, bidder Address) (decimal.Decimal, error)
	UserBidsLength(ctx.Ctx, Address) (int64, error)
	UserBids(c ctx.Ctx, user Address, cursor, size int64) ([]UserBid, error)
}
