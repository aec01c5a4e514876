package redis

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/database/redisclient"
	"github.com/x-xyz/auctionindexer/base/metrics"
)

var mockCtx = ctx.Background()

type redisSuite struct {
	suite.Suite
	im Service
}

func (s *redisSuite) SetupTest() {
	uri := os.Getenv("REDIS_TEST_URI")
	if uri == "" {
		s.T().Skip("REDIS_TEST_URI not set")
	}
	pool := redisclient.MustConnectRedis(uri, "")
	s.im = New("test", metrics.New("redis"), &Pools{Src: pool})
}

func (s *redisSuite) TestSetGetDel() {
	key := "test:redis:key"
	_, _ = s.im.Del(mockCtx, key)

	_, err := s.im.Get(mockCtx, key)
	s.Equal(ErrNotFound, err)

	s.Require().NoError(s.im.Set(mockCtx, key, []byte("v"), 10*time.Second))
	val, err := s.im.Get(mockCtx, key)
	s.NoError(err)
	s.Equal([]byte("v"), val)

	ttl, err := s.im.TTL(mockCtx, key)
	s.NoError(err)
	s.True(ttl > 0 && ttl <= 10)

	n, err := s.im.Del(mockCtx, key)
	s.NoError(err)
	s.Equal(1, n)

	exists, err := s.im.Exists(mockCtx, key)
	s.NoError(err)
	s.False(exists)
}

func (s *redisSuite) TestForever() {
	key := "test:redis:forever"
	s.Require().NoError(s.im.Set(mockCtx, key, []byte("v"), Forever))
	_, err := s.im.TTL(mockCtx, key)
	s.Equal(ErrNoTTL, err)
	_, _ = s.im.Del(mockCtx, key)
	s.NoError(s.im.Ping(mockCtx))
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}
