package domain

import "github.com/x-xyz/auctionindexer/base/ctx"

// SweepReport summarizes one bounded cron run
type SweepReport struct {
	RunId     string      `json:"runId"`
	Total     int64       `json:"total"`
	Start     AuctionId   `json:"start"`
	Next      AuctionId   `json:"next"`
	Processed int         `json:"processed"`
	Refreshed []AuctionId `json:"refreshed"`
	Changed   []AuctionId `json:"changed"`
	Failed    []AuctionId `json:"failed"`
	GivenUp   []AuctionId `json:"givenUp"`
}

type Sweeper interface {
	// Sweep fails with ErrCronRunning while another run holds the lock
	Sweep(ctx.Ctx) (*SweepReport, error)
}
