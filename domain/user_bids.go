package domain

import (
	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionindexer/base/ctx"
)

const UserBidsPageSize = 20

type UserBid struct {
	AuctionId AuctionId       `json:"auctionId" bson:"auctionId"`
	Amount    decimal.Decimal `json:"amount" bson:"amount"`
}

type UserBids struct {
	Address Address   `json:"address" bson:"address"`
	Bids    []UserBid `json:"bids" bson:"bids"`
}

type UserBidInfo struct {
	UserBid `bson:",inline"`
	Auction *Auction `json:"auction"`
}

type UserBidsInfo struct {
	Address Address       `json:"address"`
	Bids    []UserBidInfo `json:"bids"`
}

type UserBidsRepo interface {
	FindOne(ctx.Ctx, Address) (*UserBids, error)
	Upsert(ctx.Ctx, *UserBids) error
}

type UserBidsUseCase interface {
	// Get returns an empty list for an address never refreshed
	Get(ctx.Ctx, Address) (*UserBids, error)
	GetInfo(ctx.Ctx, Address) (*UserBidsInfo, error)
	// Refresh rebuilds the whole list from the contract
	Refresh(ctx.Ctx, Address) (*UserBids, error)
}
