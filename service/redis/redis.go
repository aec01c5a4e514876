package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

var (
	// ErrNotFound is returned for a missing key
	ErrNotFound = errors.New("redis key not found")
	// ErrNoTTL is returned by TTL for a key without expiry
	ErrNoTTL = errors.New("redis key has no ttl")
)

// Forever stores a key without expiry
const Forever = time.Duration(-1)

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// Service is the subset of redis commands used by the cache layer and the health check
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining seconds of a key
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
	Name() string
}
