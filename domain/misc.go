package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type SortDir int8

const (
	SortDirAsc  SortDir = 1
	SortDirDesc SortDir = -1
)

// weiDecimals is the fixed-point exponent of every on-chain amount
const weiDecimals = 18

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// ToAddress lowercases the hex form, addresses are always stored lowercase
func ToAddress(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsNull reports an unset or all-zero address
func (a Address) IsNull() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// WeiToDecimal converts an 18-decimals on-chain integer
func WeiToDecimal(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -weiDecimals)
}

// BigToInt64 rejects uint256 values that do not fit an int64
func BigToInt64(v *big.Int) (int64, error) {
	if v == nil || !v.IsInt64() {
		return 0, fmt.Errorf("%v out of int64 range: %w", v, ErrInvalidResult)
	}
	return v.Int64(), nil
}
