package chain

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/auctionindexer/base/backoff"
	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/base/metrics"
	"github.com/x-xyz/auctionindexer/domain"
)

const DefaultMaxRetries = 2

var met = metrics.New("invoker")

// Caller is the part of Client the invoker drives
type Caller interface {
	Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Reconnect(ctx context.Context) error
}

// Validator rejects a call result that decoded fine but cannot be trusted
type Validator func(res []interface{}) error

type InvokerCfg struct {
	// MaxRetries of 0 or less means DefaultMaxRetries
	MaxRetries int
	// Interval is the first pause between attempts, doubled on each retry
	Interval time.Duration
}

type Invoker struct {
	caller Caller
	cfg    InvokerCfg
}

func NewInvoker(caller Caller, cfg InvokerCfg) *Invoker {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	return &Invoker{caller: caller, cfg: cfg}
}

// Invoke calls method up to MaxRetries+1 times. Each failed attempt, including a rejected validate, reconnects
// the client. Exhausted retries end in *domain.ContractCallFailed.
func (iv *Invoker) Invoke(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, validate Validator, params ...interface{}) ([]interface{}, error) {
	bo := backoff.NewExponential(iv.cfg.Interval, 0)
	var lastErr error
	for attempt := 0; attempt <= iv.cfg.MaxRetries; attempt++ {
		res, err := iv.caller.Call(ctx, addr, _abi, method, params...)
		if err == nil && validate != nil {
			err = validate(res)
		}
		if err == nil {
			return res, nil
		}

		lastErr = err
		remaining := iv.cfg.MaxRetries - attempt
		ctx.WithFields(log.Fields{
			"err":       err,
			"method":    method,
			"params":    params,
			"attempt":   attempt + 1,
			"remaining": remaining,
		}).Warn("contract call failed")
		met.BumpSum("retry", 1, "method", method)

		if err := iv.caller.Reconnect(ctx); err != nil {
			ctx.WithField("err", err).Warn("reconnect before retry failed")
		}
		if remaining == 0 {
			break
		}
		if err := bo.Backoff(ctx); err != nil {
			lastErr = err
			break
		}
	}

	met.BumpSum("failed", 1, "method", method)
	failed := &domain.ContractCallFailed{
		Method:  method,
		Args:    params,
		Retries: iv.cfg.MaxRetries,
		LastErr: lastErr,
	}
	ctx.WithField("err", failed).Error("contract call retries exhausted")
	return nil, failed
}
