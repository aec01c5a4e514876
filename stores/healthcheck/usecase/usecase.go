package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
	hcdomain "github.com/x-xyz/auctionindexer/domain/healthcheck"
)

const chainTimeout = 5 * time.Second

type HealthCheckCfg struct {
	Repo hcdomain.HealthCheckRepo
	// Chain and Checkpoint are optional
	Chain      domain.EthClientRepo
	Checkpoint domain.CheckpointUseCase
}

type impl struct {
	repo       hcdomain.HealthCheckRepo
	chain      domain.EthClientRepo
	checkpoint domain.CheckpointUseCase
}

func New(cfg *HealthCheckCfg) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:       cfg.Repo,
		chain:      cfg.Chain,
		checkpoint: cfg.Checkpoint,
	}
}

func (im *impl) Check(c ctx.Ctx) *hcdomain.Report {
	r := &hcdomain.Report{Healthy: true, Components: map[string]string{}}
	fail := func(component string, err error) {
		r.Healthy = false
		r.Components[component] = err.Error()
	}

	if err := im.repo.PingDB(c); err != nil {
		fail(hcdomain.ComponentMongo, err)
	} else {
		r.Components[hcdomain.ComponentMongo] = hcdomain.StatusOk
	}

	switch err := im.repo.PingCache(c); {
	case err == nil:
		r.Components[hcdomain.ComponentRedis] = hcdomain.StatusOk
	case errors.Is(err, hcdomain.ErrCacheDisabled):
		r.Components[hcdomain.ComponentRedis] = hcdomain.StatusDisabled
	default:
		fail(hcdomain.ComponentRedis, err)
	}

	if im.chain != nil {
		cc, cancel := ctx.WithTimeout(c, chainTimeout)
		head, err := im.chain.BlockNumber(cc)
		cancel()
		if err != nil {
			c.WithField("err", err).Error("chain.BlockNumber failed")
			fail(hcdomain.ComponentChain, err)
		} else {
			r.Components[hcdomain.ComponentChain] = hcdomain.StatusOk
			r.HeadBlock = head
		}
	}

	// a missing checkpoint only means the crawler has not finished a batch yet
	if im.checkpoint != nil {
		if state, err := im.checkpoint.GetCrawler(c); err == nil {
			r.LastBlockProcessed = state.LastBlockProcessed
		} else if !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Warn("checkpoint.GetCrawler failed")
		}
	}
	return r
}
