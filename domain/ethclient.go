package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// just using go-ethereum/ethclient
type EthClientRepo interface {
	BlockNumber(context.Context) (uint64, error)
	FilterLogs(context.Context, ethereum.FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(context.Context, ethereum.FilterQuery, chan<- types.Log) (ethereum.Subscription, error)
	CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error)
	Close()
}

// ChainClient holds one live node connection, Reconnect replaces it
type ChainClient interface {
	EthClientRepo
	Reconnect(context.Context) error
}
