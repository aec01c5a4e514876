package provider

import (
	"time"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

type layered struct {
	layers []Provider
}

// NewLayered reads the layers in order and returns on the first hit.
// Faster layers that missed are back-filled with the remaining ttl.
func NewLayered(layers ...Provider) Provider {
	return &layered{layers}
}

func (im *layered) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == ErrNotFound {
			continue
		} else if err != nil {
			return nil, 0, err
		}

		for _, missed := range im.layers[:idx] {
			if err := missed.Set(c, key, val, ttl); err != nil {
				return nil, 0, err
			}
		}
		return val, ttl, nil
	}
	return nil, 0, ErrNotFound
}

func (im *layered) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (im *layered) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
