package repository

import (
	"time"

	"github.com/x-xyz/auctionindexer/base/ctx"
	hcdomain "github.com/x-xyz/auctionindexer/domain/healthcheck"
	"github.com/x-xyz/auctionindexer/domain/keys"
	"github.com/x-xyz/auctionindexer/service/query"
	"github.com/x-xyz/auctionindexer/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mongo      query.Mongo
	redisCache redis.Service
}

// New probes mongo and, when redisCache is not nil, the redis cache
func New(mongo query.Mongo, redisCache redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		mongo:      mongo,
		redisCache: redisCache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	c, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mongo.Ping(c); err != nil {
		context.WithField("err", err).Error("mongo.Ping failed")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return hcdomain.ErrCacheDisabled
	}
	c, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(c, keys.HealthCheckKey("ping"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("redisCache.Set failed")
		return err
	}
	return nil
}
