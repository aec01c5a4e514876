package cache

import (
	"encoding/json"
	"time"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
)

// ErrNotFound is shared with the providers so a miss compares equal at every layer
var ErrNotFound = provider.ErrNotFound

// Loader fills a miss. It must return a non-nil pointer of the container's type.
type Loader func() (interface{}, error)

// Codec turns values into provider bytes and back
type Codec struct {
	Marshal   func(interface{}) ([]byte, error)
	Unmarshal func([]byte, interface{}) error
}

// JSONCodec is used when ServiceConfig.Codec is zero
var JSONCodec = Codec{Marshal: json.Marshal, Unmarshal: json.Unmarshal}

// Service stores typed values under Pfx on top of a byte Provider
type Service interface {
	// GetByFunc returns the cached value or loads, stores and returns it.
	// A broken cache falls through to load.
	GetByFunc(c ctx.Ctx, key string, container interface{}, load Loader) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
	Codec Codec
}
