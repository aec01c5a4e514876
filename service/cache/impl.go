package cache

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain/keys"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
)

type impl struct {
	ttl   time.Duration
	pfx   string
	cache provider.Provider
	codec Codec
}

func New(config ServiceConfig) Service {
	if config.Codec.Marshal == nil || config.Codec.Unmarshal == nil {
		config.Codec = JSONCodec
	}
	return &impl{
		ttl:   config.Ttl,
		pfx:   config.Pfx,
		cache: config.Cache,
		codec: config.Codec,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, load Loader) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		c.WithField("err", err).WithField("key", key).Warn("Get failed, falling back to load")
	}

	val, err := load()
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("cache loader for %s returned %T, want a non-nil pointer", key, val)
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Set failed")
	}

	reflect.ValueOf(container).Elem().Set(rv.Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	if val, _, err := im.cache.Get(c, key); errors.Is(err, ErrNotFound) {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	} else if err := im.codec.Unmarshal(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Unmarshal failed")
		return err
	}

	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	if val, err := im.codec.Marshal(value); err != nil {
		c.WithField("err", err).WithField("key", key).Error("Marshal failed")
		return err
	} else if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}

	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}

	return nil
}
