package tracker

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

type blockRange struct {
	begin uint64
	end   uint64 // inclusive
}

// nextRange is the batch following lastProcessed, capped at maxBatch blocks.
// It reports false while the head has not moved past lastProcessed.
func nextRange(lastProcessed, head, maxBatch uint64) (*blockRange, bool) {
	begin := lastProcessed + 1
	if head < begin {
		return nil, false
	}
	end := head
	if maxBatch > 0 && end-begin+1 > maxBatch {
		end = begin + maxBatch - 1
	}
	return &blockRange{begin: begin, end: end}, true
}

func (r *blockRange) size() uint64 {
	return r.end - r.begin + 1
}

func (r *blockRange) query(contract common.Address, topics [][]common.Hash) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(r.begin),
		ToBlock:   new(big.Int).SetUint64(r.end),
		Addresses: []common.Address{contract},
		Topics:    topics,
	}
}

func (r *blockRange) String() string {
	return fmt.Sprintf("blockRange{%d-%d}", r.begin, r.end)
}
