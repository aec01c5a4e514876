package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

var bidder = common.HexToAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")

func makeLog(t *testing.T, event string, id int64, args ...interface{}) *types.Log {
	ev := MarketplaceABI.Events[event]
	data, err := ev.Inputs.NonIndexed().Pack(args...)
	require.NoError(t, err)
	return &types.Log{
		Topics: []common.Hash{ev.ID, common.BigToHash(big.NewInt(id))},
		Data:   data,
	}
}

func TestToMarketplaceBidLog(t *testing.T) {
	req := require.New(t)
	amount, _ := new(big.Int).SetString("1500000000000000000", 10)

	l, err := ToMarketplaceBidLog(makeLog(t, "Bid", 42, amount, bidder))
	req.NoError(err)
	req.Equal(int64(42), l.AuctionId.Int64())
	req.Equal(amount.String(), l.Amount.String())
	req.Equal(bidder, l.HighestBidder)
}

func TestToMarketplaceSoldLog(t *testing.T) {
	req := require.New(t)
	token := common.HexToAddress("0x0000000000000000000000000000000000000001")

	l, err := ToMarketplaceSoldLog(makeLog(t, "Sold", 7, big.NewInt(100), token, bidder))
	req.NoError(err)
	req.Equal(int64(7), l.AuctionId.Int64())
	req.Equal(int64(100), l.SalesPrice.Int64())
	req.Equal(token, l.Token)
	req.Equal(bidder, l.HighestBidder)
}

func TestToMarketplaceListLog(t *testing.T) {
	req := require.New(t)

	l, err := ToMarketplaceListLog(makeLog(t, "List", 3))
	req.NoError(err)
	req.Equal(int64(3), l.AuctionId.Int64())

	_, err = ToMarketplaceListLog(&types.Log{Topics: []common.Hash{MarketplaceABI.Events["List"].ID}})
	req.Equal(ErrMissingTopic, err)
}

func TestAddressOnlyLogs(t *testing.T) {
	req := require.New(t)

	c, err := ToMarketplaceCloseAuctionLog(makeLog(t, "CloseAuction", 1, bidder))
	req.NoError(err)
	req.Equal(bidder, c.HighestBidder)

	w, err := ToMarketplaceWithdrawAllLog(makeLog(t, "WithdrawAll", 2, bidder))
	req.NoError(err)
	req.Equal(bidder, w.Account)

	e, err := ToMarketplaceEmergencyWithdrawalLog(makeLog(t, "EmergencyWithdrawal", 3, bidder))
	req.NoError(err)
	req.Equal(int64(3), e.AuctionId.Int64())
	req.Equal(bidder, e.HighestBidder)
}

func TestMethodsPresent(t *testing.T) {
	for _, m := range []string{"auctionsLength", "auctions", "lastPrice", "lastToken", "finalHighestBid", "bidBalance", "getUserBidsLength", "getUserBids"} {
		_, ok := MarketplaceABI.Methods[m]
		require.True(t, ok, m)
	}
	require.Len(t, MarketplaceABI.Methods["auctions"].Outputs, 12)
}
