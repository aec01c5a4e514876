package domain

import "github.com/x-xyz/auctionindexer/base/ctx"

type NftMetaUseCase interface {
	// Get fails with ErrUnknownNftToken for a token outside the series map
	Get(c ctx.Ctx, nftToken Address, tokenId int64) (*NftData, error)
}

type Notifier interface {
	AuctionSold(c ctx.Ctx, a *Auction) error
	CronStale(c ctx.Ctx, state *CronState) error
}
