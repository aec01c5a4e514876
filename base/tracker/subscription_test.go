package tracker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/auctionindexer/base/backoff"
	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
)

func TestSubscriptionLoggerResubscribes(t *testing.T) {
	req := require.New(t)
	client := &fakeClient{subs: make(chan chan<- types.Log, 4)}
	s := newSubscriptionLogger(client, contract, marketplaceTopics())
	s.backoff = backoff.NewConstant(time.Millisecond)

	var mu sync.Mutex
	got := []uint64{}
	s.onLog = func(l types.Log) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, l.BlockNumber)
	}

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	done := make(chan struct{})
	go func() {
		s.run(ctx)
		close(done)
	}()

	ch := <-client.subs
	ch <- marketplaceLog("List", 1, 0, 1)
	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, time.Millisecond)

	// drop the first subscription, the logger must come back
	client.mu.Lock()
	client.lastSub.errCh <- errors.New("ws closed")
	client.mu.Unlock()

	ch = <-client.subs
	ch <- marketplaceLog("List", 2, 0, 2)

	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("logger did not stop")
	}
	req.Equal([]uint64{1, 2}, got)
}
