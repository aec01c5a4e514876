package provider

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

type local struct {
	name  string
	cache *freecache.Cache
}

// NewLocal is an in-process freecache of sizeMB megabytes
func NewLocal(name string, sizeMB int) Provider {
	return &local{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *local) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, ErrNotFound
	} else if err != nil {
		c.WithFields(map[string]interface{}{"err": err, "key": key, "cache": im.name}).Error("freecache.Get failed")
		return nil, 0, err
	}
	// expiration is an absolute unix second, 0 for no expiry
	if ttl == 0 {
		return val, 0, nil
	}
	return val, time.Until(time.Unix(int64(ttl), 0)), nil
}

func (im *local) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	secs := int(ttl.Seconds())
	if ttl > 0 && secs == 0 {
		// freecache treats 0 as no expiry
		secs = 1
	}
	if err := im.cache.Set([]byte(key), value, secs); err != nil {
		c.WithFields(map[string]interface{}{"err": err, "key": key, "cache": im.name}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *local) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
