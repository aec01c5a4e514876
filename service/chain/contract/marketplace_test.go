package contract

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/chain"
)

// stubCaller answers each method with a queue of results, the last one repeats
type stubCaller struct {
	results map[string][][]interface{}
	params  map[string][]interface{}
	calls   map[string]int
}

func newStubCaller() *stubCaller {
	return &stubCaller{
		results: map[string][][]interface{}{},
		params:  map[string][]interface{}{},
		calls:   map[string]int{},
	}
}

func (s *stubCaller) on(method string, res ...[]interface{}) {
	s.results[method] = res
}

func (s *stubCaller) Call(_ bCtx.Ctx, _ common.Address, _ abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	queue, ok := s.results[method]
	if !ok {
		return nil, errors.New("unexpected call " + method)
	}
	i := s.calls[method]
	s.calls[method]++
	s.params[method] = params
	if i >= len(queue) {
		i = len(queue) - 1
	}
	return queue[i], nil
}

func (s *stubCaller) Reconnect(context.Context) error { return nil }

func wei(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}

var (
	hammer   = common.HexToAddress("0xcA56AF4bde480B3c177E1A4115189F261C2af034")
	owner    = common.HexToAddress("0x1111111111111111111111111111111111111111")
	busd     = common.HexToAddress("0x2222222222222222222222222222222222222222")
	bidder   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	contract = common.HexToAddress("0x7579Cc6c2edC67Cf446bA11C4FfFae874A6808C0")
)

func auctionResult(nftToken common.Address) []interface{} {
	return []interface{}{
		nftToken, big.NewInt(77), owner, busd,
		wei("2000000000000000000"), wei("1000000000000000000"), big.NewInt(1700000000), wei("100000000000000000"),
		false, bidder, uint8(1), false,
	}
}

func newMarketplace(s *stubCaller) domain.MarketplaceContract {
	return NewMarketplace(chain.NewInvoker(s, chain.InvokerCfg{MaxRetries: 2}), contract)
}

func TestGetAuction(t *testing.T) {
	req := require.New(t)
	s := newStubCaller()
	s.on("auctions", auctionResult(hammer))

	a, err := newMarketplace(s).GetAuction(bCtx.Background(), 42)
	req.NoError(err)
	req.Equal([]interface{}{big.NewInt(42)}, s.params["auctions"])
	req.Equal(domain.Address("0xca56af4bde480b3c177e1a4115189f261c2af034"), a.NftToken)
	req.Equal(int64(77), a.NftTokenId)
	req.Equal("2", a.TargetPrice.String())
	req.Equal("1", a.ReservePrice.String())
	req.Equal("0.1", a.MinIncrement.String())
	req.Equal(int64(1700000000), a.EndTime)
	req.Equal(domain.ToAddress(bidder), a.HighestBidder)
	req.Equal(uint8(1), a.AuctionType)
	req.False(a.IsSettled)
}

func TestGetAuctionNullTokenRetried(t *testing.T) {
	req := require.New(t)
	s := newStubCaller()
	s.on("auctions", auctionResult(common.Address{}), auctionResult(hammer))

	a, err := newMarketplace(s).GetAuction(bCtx.Background(), 1)
	req.NoError(err)
	req.Equal(2, s.calls["auctions"])
	req.False(a.NftToken.IsNull())

	s = newStubCaller()
	s.on("auctions", auctionResult(common.Address{}))
	_, err = newMarketplace(s).GetAuction(bCtx.Background(), 1)
	var failed *domain.ContractCallFailed
	req.True(errors.As(err, &failed))
	req.True(errors.Is(err, domain.ErrNullNftToken))
	req.Equal(3, s.calls["auctions"])
}

func TestAmounts(t *testing.T) {
	req := require.New(t)
	s := newStubCaller()
	s.on("bidBalance", []interface{}{wei("1500000000000000000")})
	s.on("finalHighestBid", []interface{}{wei("3000000000000000000")})
	s.on("lastPrice", []interface{}{wei("250000000000000000")})
	s.on("lastToken", []interface{}{busd})
	s.on("auctionsLength", []interface{}{big.NewInt(314)})
	m := newMarketplace(s)
	c := bCtx.Background()

	v, err := m.BidBalance(c, 42, domain.ToAddress(bidder))
	req.NoError(err)
	req.Equal("1.5", v.String())
	req.Equal([]interface{}{big.NewInt(42), bidder}, s.params["bidBalance"])

	v, err = m.FinalHighestBid(c, 42)
	req.NoError(err)
	req.Equal("3", v.String())

	v, err = m.LastPrice(c, domain.ToAddress(hammer), 77)
	req.NoError(err)
	req.Equal("0.25", v.String())

	tok, err := m.LastToken(c, domain.ToAddress(hammer), 77)
	req.NoError(err)
	req.Equal(domain.ToAddress(busd), tok)

	n, err := m.AuctionsLength(c)
	req.NoError(err)
	req.Equal(int64(314), n)
}

func TestUserBids(t *testing.T) {
	req := require.New(t)
	s := newStubCaller()
	s.on("getUserBidsLength", []interface{}{big.NewInt(2)})
	s.on("getUserBids", []interface{}{
		[]*big.Int{big.NewInt(3), big.NewInt(9)},
		[]*big.Int{wei("1000000000000000000"), wei("500000000000000000")},
	})
	m := newMarketplace(s)
	c := bCtx.Background()

	n, err := m.UserBidsLength(c, domain.ToAddress(bidder))
	req.NoError(err)
	req.Equal(int64(2), n)

	bids, err := m.UserBids(c, domain.ToAddress(bidder), 0, domain.UserBidsPageSize)
	req.NoError(err)
	req.Equal([]interface{}{bidder, big.NewInt(0), big.NewInt(20)}, s.params["getUserBids"])
	req.Len(bids, 2)
	req.Equal(domain.AuctionId(9), bids[1].AuctionId)
	req.Equal("0.5", bids[1].Amount.String())

	s.on("getUserBids", []interface{}{[]*big.Int{big.NewInt(3)}, []*big.Int{}})
	_, err = m.UserBids(c, domain.ToAddress(bidder), 0, domain.UserBidsPageSize)
	req.True(errors.Is(err, domain.ErrInvalidResult))
}

func TestOutOfRangeIdsRejected(t *testing.T) {
	req := require.New(t)
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	c := bCtx.Background()

	s := newStubCaller()
	res := auctionResult(hammer)
	res[1] = huge
	s.on("auctions", res)
	_, err := newMarketplace(s).GetAuction(c, 1)
	req.True(errors.Is(err, domain.ErrInvalidResult))

	s = newStubCaller()
	res = auctionResult(hammer)
	res[6] = new(big.Int).Lsh(big.NewInt(1), 63)
	s.on("auctions", res)
	_, err = newMarketplace(s).GetAuction(c, 1)
	req.True(errors.Is(err, domain.ErrInvalidResult))

	s = newStubCaller()
	s.on("auctionsLength", []interface{}{huge})
	s.on("getUserBidsLength", []interface{}{huge})
	s.on("getUserBids", []interface{}{[]*big.Int{big.NewInt(3), huge}, []*big.Int{big.NewInt(1), big.NewInt(1)}})
	m := newMarketplace(s)

	_, err = m.AuctionsLength(c)
	req.True(errors.Is(err, domain.ErrInvalidResult))
	_, err = m.UserBidsLength(c, domain.ToAddress(bidder))
	req.True(errors.Is(err, domain.ErrInvalidResult))
	bids, err := m.UserBids(c, domain.ToAddress(bidder), 0, domain.UserBidsPageSize)
	req.True(errors.Is(err, domain.ErrInvalidResult))
	req.Nil(bids)
}
