package usecase

import (
	"errors"
	"time"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
)

type checkpointUseCase struct {
	repo       domain.CheckpointRepo
	ctxTimeout time.Duration
}

func NewCheckpointUseCase(r domain.CheckpointRepo, ctxTimeout time.Duration) domain.CheckpointUseCase {
	return &checkpointUseCase{
		repo:       r,
		ctxTimeout: ctxTimeout,
	}
}

func (u *checkpointUseCase) GetCrawler(c bCtx.Ctx) (*domain.CrawlerState, error) {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	return u.repo.GetCrawler(ctx)
}

func (u *checkpointUseCase) StoreCrawler(c bCtx.Ctx, state *domain.CrawlerState) error {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()

	cur, err := u.repo.GetCrawler(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if cur != nil && cur.LastBlockProcessed > state.LastBlockProcessed {
		c.WithFields(log.Fields{
			"stored": cur.LastBlockProcessed,
			"given":  state.LastBlockProcessed,
		}).Warn("refusing to move crawler checkpoint backwards")
		return nil
	}
	return u.repo.StoreCrawler(ctx, state)
}

func (u *checkpointUseCase) GetCron(c bCtx.Ctx) (*domain.CronState, error) {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()

	state, err := u.repo.GetCron(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.CronState{Name: domain.CronCheckpoint}, nil
	}
	return state, err
}

func (u *checkpointUseCase) StoreCron(c bCtx.Ctx, state *domain.CronState) error {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	return u.repo.StoreCron(ctx, state)
}
