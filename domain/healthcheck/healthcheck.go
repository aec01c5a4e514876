package healthcheck

import (
	"errors"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

const (
	ComponentMongo = "mongo"
	ComponentRedis = "redis"
	ComponentChain = "chain"

	StatusOk       = "ok"
	StatusDisabled = "disabled"
)

// ErrCacheDisabled is returned by PingCache when no redis is configured
var ErrCacheDisabled = errors.New("cache disabled")

// Report is the body of /health. Components maps a component name to "ok",
// "disabled" or the probe error.
type Report struct {
	Healthy            bool              `json:"healthy"`
	Components         map[string]string `json:"components"`
	HeadBlock          uint64            `json:"headBlock,omitempty"`
	LastBlockProcessed uint64            `json:"lastBlockProcessed,omitempty"`
}

type HealthCheckUsecase interface {
	Check(ctx.Ctx) *Report
}

type HealthCheckRepo interface {
	PingDB(ctx.Ctx) error
	PingCache(ctx.Ctx) error
}
