package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
)

var ErrNoSubscription = errors.New("no websocket url configured for subscriptions")

const defaultTimeout = 30 * time.Second

type ClientCfg struct {
	RpcUrl string
	// WsUrl is only used by SubscribeFilterLogs. Empty disables subscriptions.
	WsUrl   string
	Timeout time.Duration
}

// DialFunc opens one node connection
type DialFunc func(ctx context.Context, url string) (domain.EthClientRepo, error)

func dialEth(ctx context.Context, url string) (domain.EthClientRepo, error) {
	return ethclient.DialContext(ctx, url)
}

type ClientOption func(*Client)

func WithDialFunc(dial DialFunc) ClientOption {
	return func(c *Client) {
		c.dial = dial
	}
}

// conns is replaced as a whole on reconnect, never mutated
type conns struct {
	rpc domain.EthClientRepo
	ws  domain.EthClientRepo
}

func (cs *conns) close() {
	cs.rpc.Close()
	if cs.ws != nil {
		cs.ws.Close()
	}
}

// Client is the node connection shared by the crawler, the sweeper and the api
type Client struct {
	cfg  ClientCfg
	dial DialFunc

	current atomic.Value // *conns
	mu      sync.Mutex   // serializes reconnects
}

func NewClient(ctx bCtx.Ctx, cfg ClientCfg, opts ...ClientOption) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	c := &Client{cfg: cfg, dial: dialEth}
	for _, opt := range opts {
		opt(c)
	}

	cs, err := c.connect(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": cfg.RpcUrl}).Error("failed to dial rpc")
		return nil, err
	}
	c.current.Store(cs)
	return c, nil
}

func (c *Client) connect(ctx context.Context) (*conns, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	rpc, err := c.dial(dialCtx, c.cfg.RpcUrl)
	if err != nil {
		return nil, err
	}
	cs := &conns{rpc: rpc}
	if c.cfg.WsUrl != "" {
		ws, err := c.dial(dialCtx, c.cfg.WsUrl)
		if err != nil {
			rpc.Close()
			return nil, err
		}
		cs.ws = ws
	}
	return cs, nil
}

func (c *Client) conns() *conns {
	return c.current.Load().(*conns)
}

// Reconnect dials fresh connections and swaps them in. In-flight calls on the old ones fail.
func (c *Client) Reconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := bCtx.From(ctx).WithField("url", c.cfg.RpcUrl)
	cs, err := c.connect(ctx)
	if err != nil {
		logger.WithField("err", err).Error("reconnect failed")
		return err
	}
	old := c.current.Swap(cs).(*conns)
	old.close()
	logger.Info("chain client reconnected")
	return nil
}

func (c *Client) Close() {
	c.conns().close()
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()
	return c.conns().rpc.BlockNumber(ctx)
}

func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()
	return c.conns().rpc.FilterLogs(ctx, q)
}

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()
	return c.conns().rpc.CallContract(ctx, msg, blk)
}

// SubscribeFilterLogs has no call timeout, the subscription lives until ctx is done or it errors
func (c *Client) SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	ws := c.conns().ws
	if ws == nil {
		return nil, ErrNoSubscription
	}
	return ws.SubscribeFilterLogs(ctx, q, ch)
}

// Call packs the method, calls it on the latest block and returns the unpacked outputs
func (c *Client) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{"method": method, "err": err}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
