package tracker

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/auctionindexer/base/abi"
	"github.com/x-xyz/auctionindexer/domain"
)

func wei(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return v
}

func Test_decodeMarketplaceLog(t *testing.T) {
	bidder := common.HexToAddress("0x00000000000000000000000000000000000A11CE")
	busd := common.HexToAddress("0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56")
	lower := domain.ToAddress(bidder)

	tests := []struct {
		name  string
		log   types.Log
		check func(*testing.T, domain.MarketplaceEvent)
	}{
		{
			name: "list",
			log:  marketplaceLog("List", 10, 0, 3),
			check: func(t *testing.T, ev domain.MarketplaceEvent) {
				require.IsType(t, &domain.ListEvent{}, ev)
			},
		},
		{
			name: "bid",
			log:  marketplaceLog("Bid", 10, 1, 3, wei("1500000000000000000"), bidder),
			check: func(t *testing.T, ev domain.MarketplaceEvent) {
				e := ev.(*domain.BidEvent)
				require.True(t, decimal.RequireFromString("1.5").Equal(e.Amount))
				require.Equal(t, lower, e.Bidder)
			},
		},
		{
			name: "sold",
			log:  marketplaceLog("Sold", 11, 0, 3, wei("2000000000000000000"), busd, bidder),
			check: func(t *testing.T, ev domain.MarketplaceEvent) {
				e := ev.(*domain.SoldEvent)
				require.True(t, decimal.NewFromInt(2).Equal(e.SalesPrice))
				require.Equal(t, domain.ToAddress(busd), e.Token)
				require.Equal(t, lower, e.Bidder)
			},
		},
		{
			name: "close auction",
			log:  marketplaceLog("CloseAuction", 11, 1, 3, bidder),
			check: func(t *testing.T, ev domain.MarketplaceEvent) {
				require.Equal(t, lower, ev.(*domain.CloseAuctionEvent).Bidder)
			},
		},
		{
			name: "withdraw all",
			log:  marketplaceLog("WithdrawAll", 12, 0, 3, bidder),
			check: func(t *testing.T, ev domain.MarketplaceEvent) {
				require.Equal(t, lower, ev.(*domain.WithdrawAllEvent).Account)
			},
		},
		{
			name: "emergency withdrawal",
			log:  marketplaceLog("EmergencyWithdrawal", 12, 1, 3, bidder),
			check: func(t *testing.T, ev domain.MarketplaceEvent) {
				require.Equal(t, lower, ev.(*domain.EmergencyWithdrawalEvent).Bidder)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := decodeMarketplaceLog(&tt.log)
			require.NoError(t, err)
			require.Equal(t, domain.AuctionId(3), ev.GetAuctionId())
			require.Equal(t, tt.log.BlockNumber, ev.Meta().BlockNumber)
			require.Equal(t, tt.log.Index, ev.Meta().LogIndex)
			require.Equal(t, tt.log.TxHash, ev.Meta().TxHash)
			tt.check(t, ev)
		})
	}
}

func Test_decodeMarketplaceLogErrors(t *testing.T) {
	_, err := decodeMarketplaceLog(&types.Log{})
	require.ErrorIs(t, err, abi.ErrMissingTopic)

	_, err = decodeMarketplaceLog(&types.Log{Topics: []common.Hash{common.HexToHash("0xdead")}})
	require.ErrorIs(t, err, ErrUnknownEvent)

	// indexed id missing
	_, err = decodeMarketplaceLog(&types.Log{Topics: []common.Hash{listTopic}})
	require.ErrorIs(t, err, abi.ErrMissingTopic)

	// uint256 ids past int64 are not truncated
	huge := common.BigToHash(new(big.Int).Lsh(big.NewInt(1), 64))
	_, err = decodeMarketplaceLog(&types.Log{Topics: []common.Hash{listTopic, huge}})
	require.ErrorIs(t, err, domain.ErrInvalidResult)

	bid := marketplaceLog("Bid", 10, 0, 1, wei("1000000000000000000"), common.HexToAddress("0x00000000000000000000000000000000000A11CE"))
	bid.Topics[1] = common.BigToHash(new(big.Int).Lsh(big.NewInt(1), 63))
	_, err = decodeMarketplaceLog(&bid)
	require.ErrorIs(t, err, domain.ErrInvalidResult)
}

func Test_marketplaceTopics(t *testing.T) {
	topics := marketplaceTopics()
	require.Len(t, topics, 1)
	require.Len(t, topics[0], 6)
	require.Contains(t, topics[0], soldTopic)
}
