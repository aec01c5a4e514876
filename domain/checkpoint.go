package domain

import (
	"time"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

type CrawlerState struct {
	Name               string `bson:"name"`
	LastBlockProcessed uint64 `bson:"lastBlockProcessed"`
}

type CronState struct {
	Name          string    `bson:"name" json:"-"`
	IsRunning     bool      `bson:"isRunning" json:"isRunning"`
	LastStartTime time.Time `bson:"lastStartTime" json:"lastStartTime"`
	NextAuctionId AuctionId `bson:"nextAuctionId" json:"nextAuctionId"`
}

type CheckpointRepo interface {
	GetCrawler(ctx.Ctx) (*CrawlerState, error)
	StoreCrawler(ctx.Ctx, *CrawlerState) error
	GetCron(ctx.Ctx) (*CronState, error)
	StoreCron(ctx.Ctx, *CronState) error
}

type CheckpointUseCase interface {
	// GetCrawler returns ErrNotFound before the first batch was persisted
	GetCrawler(ctx.Ctx) (*CrawlerState, error)
	// StoreCrawler never moves the checkpoint backwards
	StoreCrawler(ctx.Ctx, *CrawlerState) error
	// GetCron returns a zero, not-running state when none was stored
	GetCron(ctx.Ctx) (*CronState, error)
	StoreCron(ctx.Ctx, *CronState) error
}
