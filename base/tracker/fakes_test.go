package tracker

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/auctionindexer/base/abi"
)

type fakeSub struct {
	errCh chan error
	once  sync.Once
}

func newFakeSub() *fakeSub {
	return &fakeSub{errCh: make(chan error, 1)}
}

func (s *fakeSub) Unsubscribe()      { s.once.Do(func() { close(s.errCh) }) }
func (s *fakeSub) Err() <-chan error { return s.errCh }

type fakeClient struct {
	mu         sync.Mutex
	head       uint64
	headErr    error
	logs       []types.Log
	filterErr  error
	queries    []ethereum.FilterQuery
	reconnects int

	// when gate is set FilterLogs reports on entered and blocks until gate is closed
	entered chan struct{}
	gate    chan struct{}

	subs    chan chan<- types.Log
	lastSub *fakeSub
}

func (c *fakeClient) BlockNumber(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.head, c.headErr
}

func (c *fakeClient) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	if c.gate != nil {
		c.entered <- struct{}{}
		<-c.gate
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, q)
	if c.filterErr != nil {
		return nil, c.filterErr
	}
	res := []types.Log{}
	for _, l := range c.logs {
		if l.BlockNumber >= q.FromBlock.Uint64() && l.BlockNumber <= q.ToBlock.Uint64() {
			res = append(res, l)
		}
	}
	return res, nil
}

func (c *fakeClient) SubscribeFilterLogs(_ context.Context, _ ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	c.mu.Lock()
	sub := newFakeSub()
	c.lastSub = sub
	c.mu.Unlock()
	if c.subs != nil {
		c.subs <- ch
	}
	return sub, nil
}

func (c *fakeClient) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return nil, nil
}

func (c *fakeClient) Close() {}

func (c *fakeClient) Reconnect(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconnects++
	return nil
}

func idTopic(id int64) common.Hash {
	return common.BigToHash(big.NewInt(id))
}

// marketplaceLog packs a log the way the marketplace contract emits it
func marketplaceLog(event string, block uint64, index uint, id int64, args ...interface{}) types.Log {
	ev := abi.MarketplaceABI.Events[event]
	data, err := ev.Inputs.NonIndexed().Pack(args...)
	if err != nil {
		panic(err)
	}
	return types.Log{
		Topics:      []common.Hash{ev.ID, idTopic(id)},
		Data:        data,
		BlockNumber: block,
		Index:       index,
		TxHash:      common.BigToHash(big.NewInt(int64(block*1000) + int64(index))),
	}
}
