package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"

	baseabi "github.com/x-xyz/auctionindexer/base/abi"
	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
)

type fakeConn struct {
	url    string
	closed bool
	height uint64
	out    []byte
}

func (f *fakeConn) BlockNumber(context.Context) (uint64, error) { return f.height, nil }
func (f *fakeConn) FilterLogs(context.Context, ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}
func (f *fakeConn) SubscribeFilterLogs(context.Context, ethereum.FilterQuery, chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("unsupported")
}
func (f *fakeConn) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return f.out, nil
}
func (f *fakeConn) Close() { f.closed = true }

func TestClientReconnectSwapsConnection(t *testing.T) {
	req := require.New(t)

	var dialed []*fakeConn
	dial := func(_ context.Context, url string) (domain.EthClientRepo, error) {
		c := &fakeConn{url: url, height: uint64(100 + len(dialed))}
		dialed = append(dialed, c)
		return c, nil
	}

	c, err := NewClient(bCtx.Background(), ClientCfg{RpcUrl: "http://node"}, WithDialFunc(dial))
	req.NoError(err)
	h, err := c.BlockNumber(context.Background())
	req.NoError(err)
	req.Equal(uint64(100), h)

	_, err = c.SubscribeFilterLogs(context.Background(), ethereum.FilterQuery{}, make(chan types.Log))
	req.Equal(ErrNoSubscription, err)

	req.NoError(c.Reconnect(context.Background()))
	req.Len(dialed, 2)
	req.True(dialed[0].closed)
	req.False(dialed[1].closed)

	h, err = c.BlockNumber(context.Background())
	req.NoError(err)
	req.Equal(uint64(101), h)
}

func TestClientReconnectFailureKeepsOld(t *testing.T) {
	req := require.New(t)

	first := &fakeConn{height: 5}
	calls := 0
	dial := func(context.Context, string) (domain.EthClientRepo, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("dial tcp: refused")
		}
		return first, nil
	}

	c, err := NewClient(bCtx.Background(), ClientCfg{RpcUrl: "http://node"}, WithDialFunc(dial))
	req.NoError(err)
	req.Error(c.Reconnect(context.Background()))
	req.False(first.closed)

	h, err := c.BlockNumber(context.Background())
	req.NoError(err)
	req.Equal(uint64(5), h)
}

func TestClientCall(t *testing.T) {
	req := require.New(t)

	out, err := baseabi.MarketplaceABI.Methods["auctionsLength"].Outputs.Pack(big.NewInt(12))
	req.NoError(err)
	dial := func(context.Context, string) (domain.EthClientRepo, error) {
		return &fakeConn{out: out}, nil
	}

	c, err := NewClient(bCtx.Background(), ClientCfg{RpcUrl: "http://node"}, WithDialFunc(dial))
	req.NoError(err)
	res, err := c.Call(bCtx.Background(), addr, baseabi.MarketplaceABI, "auctionsLength")
	req.NoError(err)
	req.Equal(big.NewInt(12), res[0])

	_, err = c.Call(bCtx.Background(), addr, baseabi.MarketplaceABI, "noSuchMethod")
	req.Error(err)
}
