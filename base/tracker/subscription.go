package tracker

import (
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/auctionindexer/base/backoff"
	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
)

const (
	resubscribeStart = time.Second
	resubscribeLimit = time.Minute
)

// subscriptionLogger only logs live marketplace events. State is owned by the poll loop.
type subscriptionLogger struct {
	client  domain.EthClientRepo
	filter  ethereum.FilterQuery
	backoff *backoff.Backoff
	// onLog is called for every live log, used by tests
	onLog func(types.Log)
}

func newSubscriptionLogger(client domain.EthClientRepo, contract common.Address, topics [][]common.Hash) *subscriptionLogger {
	return &subscriptionLogger{
		client: client,
		filter: ethereum.FilterQuery{
			Addresses: []common.Address{contract},
			Topics:    topics,
		},
		backoff: backoff.NewExponential(resubscribeStart, resubscribeLimit),
	}
}

func (s *subscriptionLogger) run(ctx bCtx.Ctx) {
	for {
		err := s.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		ctx.WithFields(log.Fields{
			"err":   err,
			"retry": s.backoff.Next().String(),
		}).Warn("subscription dropped")
		if err := s.backoff.Backoff(ctx); err != nil {
			return
		}
	}
}

func (s *subscriptionLogger) listen(ctx bCtx.Ctx) error {
	ch := make(chan types.Log, 64)
	sub, err := s.client.SubscribeFilterLogs(ctx, s.filter, ch)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()
	ctx.Info("subscription connected")
	s.backoff.Reset()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return err
		case l := <-ch:
			fields := log.Fields{
				"block":   l.BlockNumber,
				"txHash":  l.TxHash.Hex(),
				"removed": l.Removed,
			}
			if ev, err := decodeMarketplaceLog(&l); err == nil {
				fields["event"] = ev.Kind()
				fields["auctionId"] = ev.GetAuctionId()
			}
			if l.Removed {
				ctx.WithFields(fields).Info("live log changed")
			} else {
				ctx.WithFields(fields).Info("live log")
			}
			if s.onLog != nil {
				s.onLog(l)
			}
		}
	}
}
