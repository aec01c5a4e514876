package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/base/metrics"
	"github.com/x-xyz/auctionindexer/domain"
)

const (
	defaultMaxRefreshes = 10
	defaultMaxProcessed = 100
	defaultStaleAfter   = 2 * time.Hour
)

var (
	timeNow = time.Now
	met     = metrics.New("sweeper")
)

type SweeperCfg struct {
	Auction     domain.AuctionUseCase
	Marketplace domain.MarketplaceContract
	Checkpoint  domain.CheckpointUseCase
	Notifier    domain.Notifier

	// MaxRefreshes caps the unsettled auctions refreshed per run
	MaxRefreshes int
	// MaxProcessed caps the ids examined per run, settled or not
	MaxProcessed int
	// StaleAfter is how long a held lock may live before it is reported
	StaleAfter time.Duration
}

type sweeper struct {
	auction      domain.AuctionUseCase
	marketplace  domain.MarketplaceContract
	checkpoint   domain.CheckpointUseCase
	notifier     domain.Notifier
	maxRefreshes int
	maxProcessed int
	staleAfter   time.Duration
}

func NewSweeper(cfg *SweeperCfg) domain.Sweeper {
	s := &sweeper{
		auction:      cfg.Auction,
		marketplace:  cfg.Marketplace,
		checkpoint:   cfg.Checkpoint,
		notifier:     cfg.Notifier,
		maxRefreshes: cfg.MaxRefreshes,
		maxProcessed: cfg.MaxProcessed,
		staleAfter:   cfg.StaleAfter,
	}
	if s.maxRefreshes <= 0 {
		s.maxRefreshes = defaultMaxRefreshes
	}
	if s.maxProcessed <= 0 {
		s.maxProcessed = defaultMaxProcessed
	}
	if s.staleAfter <= 0 {
		s.staleAfter = defaultStaleAfter
	}
	return s
}

func (s *sweeper) Sweep(c bCtx.Ctx) (report *domain.SweepReport, err error) {
	runId := uuid.NewString()
	c = bCtx.WithValue(c, "runId", runId)

	state, err := s.checkpoint.GetCron(c)
	if err != nil {
		c.WithField("err", err).Error("checkpoint.GetCron failed")
		return nil, err
	}

	now := timeNow()
	if state.IsRunning {
		if elapsed := now.Sub(state.LastStartTime); elapsed > s.staleAfter {
			// the lock is never cleared here, someone has to look at it
			c.WithFields(log.Fields{
				"lastStartTime": state.LastStartTime,
				"elapsed":       elapsed.String(),
			}).Error("cron lock held for too long")
			if s.notifier != nil {
				if err := s.notifier.CronStale(c, state); err != nil {
					c.WithField("err", err).Warn("notifier.CronStale failed")
				}
			}
		}
		return nil, domain.ErrCronRunning
	}

	state.IsRunning = true
	state.LastStartTime = now
	if err := s.checkpoint.StoreCron(c, state); err != nil {
		c.WithField("err", err).Error("checkpoint.StoreCron failed")
		return nil, err
	}

	next := state.NextAuctionId
	defer func() {
		state.IsRunning = false
		state.NextAuctionId = next
		if sErr := s.checkpoint.StoreCron(c, state); sErr != nil {
			c.WithField("err", sErr).Error("failed to release cron lock")
			if err == nil {
				err = sErr
			}
		}
	}()

	total, err := s.marketplace.AuctionsLength(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.AuctionsLength failed")
		return nil, err
	}

	start := state.NextAuctionId
	if int64(start) >= total || start < 0 {
		start = 0
	}
	next = start

	report = &domain.SweepReport{
		RunId:     runId,
		Total:     total,
		Start:     start,
		Refreshed: []domain.AuctionId{},
		Changed:   []domain.AuctionId{},
		Failed:    []domain.AuctionId{},
		GivenUp:   []domain.AuctionId{},
	}

	cursor := start
	for len(report.Refreshed) < s.maxRefreshes && report.Processed < s.maxProcessed && int64(report.Processed) < total {
		id := cursor
		report.Processed++

		a, err := s.auction.Get(c, id)
		switch {
		case err == nil && a.IsSettled:
			// terminal, nothing to refresh
		case err == nil || errors.Is(err, domain.ErrNotFound):
			report.Refreshed = append(report.Refreshed, id)
			if err := s.refresh(c, id, report); err != nil {
				report.Failed = append(report.Failed, id)
			}
		default:
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": id,
			}).Warn("auction.Get failed")
			report.Failed = append(report.Failed, id)
		}

		next = id + 1
		cursor = id + 1
		if int64(cursor) >= total {
			cursor = 0
		}
	}

	for _, id := range report.Failed {
		if err := s.refresh(c, id, report); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": id,
			}).Error("refresh failed twice, giving up")
			report.GivenUp = append(report.GivenUp, id)
		}
	}

	report.Next = next
	met.BumpSum("processed", float64(report.Processed))
	met.BumpSum("refreshed", float64(len(report.Refreshed)))
	c.WithFields(log.Fields{
		"start":     start,
		"next":      next,
		"processed": report.Processed,
		"refreshed": len(report.Refreshed),
		"changed":   len(report.Changed),
		"givenUp":   len(report.GivenUp),
	}).Info("sweep done")
	return report, nil
}

func (s *sweeper) refresh(c bCtx.Ctx, id domain.AuctionId, report *domain.SweepReport) error {
	changed, err := s.auction.RefreshAuction(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Warn("auction.RefreshAuction failed")
		return err
	}
	if changed {
		report.Changed = append(report.Changed, id)
	}
	return nil
}
