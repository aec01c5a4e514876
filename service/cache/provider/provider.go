package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

var ErrNotFound = errors.New("cache miss")

// Provider stores raw bytes. Get returns the remaining ttl, 0 when the entry never expires.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}

var (
	_ Provider = (*local)(nil)
	_ Provider = (*remote)(nil)
	_ Provider = (*layered)(nil)
)
