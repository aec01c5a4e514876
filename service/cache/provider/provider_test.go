package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionindexer/base/ctx"
)

var (
	mockCtx = ctx.Background()
)

type layeredSuite struct {
	suite.Suite
	lyr0 Provider
	lyr1 Provider
	im   Provider
}

func (ts *layeredSuite) SetupTest() {
	ts.lyr0 = NewLocal("layer 0", 1)
	ts.lyr1 = NewLocal("layer 1", 1)
	ts.im = NewLayered(ts.lyr0, ts.lyr1)
}

func TestLayered(t *testing.T) {
	suite.Run(t, new(layeredSuite))
}

func (ts *layeredSuite) TestSet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
	r1, _, e := ts.lyr1.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r1)
}

func (ts *layeredSuite) TestGetBackFills() {
	k := "key"
	v := []byte("value")

	_, _, e := ts.im.Get(mockCtx, k)
	ts.Equal(ErrNotFound, e)

	ts.NoError(ts.lyr1.Set(mockCtx, k, v, time.Minute))
	r, ttl, e := ts.im.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r)
	ts.True(ttl > 0 && ttl <= time.Minute)

	r0, _, e := ts.lyr0.Get(mockCtx, k)
	ts.NoError(e)
	ts.Equal(v, r0)
}

func (ts *layeredSuite) TestDel() {
	k := "key"
	ts.NoError(ts.im.Set(mockCtx, k, []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, k))
	_, _, e := ts.lyr0.Get(mockCtx, k)
	ts.Equal(ErrNotFound, e)
	_, _, e = ts.lyr1.Get(mockCtx, k)
	ts.Equal(ErrNotFound, e)
}

func TestLocalExpire(t *testing.T) {
	req := require.New(t)
	im := NewLocal("expire", 1)

	req.NoError(im.Set(mockCtx, "k", []byte("v"), time.Second))
	_, _, err := im.Get(mockCtx, "k")
	req.NoError(err)

	time.Sleep(1100 * time.Millisecond)
	_, _, err = im.Get(mockCtx, "k")
	req.Equal(ErrNotFound, err)
}
