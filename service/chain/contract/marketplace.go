package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/auctionindexer/base/abi"
	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/chain"
)

const auctionOutputs = 12

type marketplace struct {
	invoker *chain.Invoker
	abi     ethabi.ABI
	addr    common.Address
}

func NewMarketplace(invoker *chain.Invoker, addr common.Address) domain.MarketplaceContract {
	return &marketplace{
		invoker: invoker,
		abi:     baseabi.MarketplaceABI,
		addr:    addr,
	}
}

func (m *marketplace) call(ctx bCtx.Ctx, method string, validate chain.Validator, params ...interface{}) ([]interface{}, error) {
	return m.invoker.Invoke(ctx, m.addr, m.abi, method, validate, params...)
}

func (m *marketplace) callBig(ctx bCtx.Ctx, method string, params ...interface{}) (*big.Int, error) {
	res, err := m.call(ctx, method, outputCount(1), params...)
	if err != nil {
		return nil, err
	}
	return asBig(res[0])
}

func (m *marketplace) AuctionsLength(ctx bCtx.Ctx) (int64, error) {
	n, err := m.callBig(ctx, "auctionsLength")
	if err != nil {
		return 0, err
	}
	return domain.BigToInt64(n)
}

func (m *marketplace) GetAuction(ctx bCtx.Ctx, id domain.AuctionId) (*domain.OnChainAuction, error) {
	res, err := m.call(ctx, "auctions", validateAuction, big.NewInt(int64(id)))
	if err != nil {
		return nil, err
	}
	return toOnChainAuction(res)
}

func (m *marketplace) LastPrice(ctx bCtx.Ctx, nftToken domain.Address, nftTokenId int64) (decimal.Decimal, error) {
	v, err := m.callBig(ctx, "lastPrice", nftToken.ToCommon(), big.NewInt(nftTokenId))
	if err != nil {
		return decimal.Zero, err
	}
	return domain.WeiToDecimal(v), nil
}

func (m *marketplace) LastToken(ctx bCtx.Ctx, nftToken domain.Address, nftTokenId int64) (domain.Address, error) {
	res, err := m.call(ctx, "lastToken", outputCount(1), nftToken.ToCommon(), big.NewInt(nftTokenId))
	if err != nil {
		return "", err
	}
	a, ok := res[0].(common.Address)
	if !ok {
		return "", domain.ErrInvalidResult
	}
	return domain.ToAddress(a), nil
}

func (m *marketplace) FinalHighestBid(ctx bCtx.Ctx, id domain.AuctionId) (decimal.Decimal, error) {
	v, err := m.callBig(ctx, "finalHighestBid", big.NewInt(int64(id)))
	if err != nil {
		return decimal.Zero, err
	}
	return domain.WeiToDecimal(v), nil
}

func (m *marketplace) BidBalance(ctx bCtx.Ctx, id domain.AuctionId, bidder domain.Address) (decimal.Decimal, error) {
	v, err := m.callBig(ctx, "bidBalance", big.NewInt(int64(id)), bidder.ToCommon())
	if err != nil {
		return decimal.Zero, err
	}
	return domain.WeiToDecimal(v), nil
}

func (m *marketplace) UserBidsLength(ctx bCtx.Ctx, user domain.Address) (int64, error) {
	n, err := m.callBig(ctx, "getUserBidsLength", user.ToCommon())
	if err != nil {
		return 0, err
	}
	return domain.BigToInt64(n)
}

func (m *marketplace) UserBids(ctx bCtx.Ctx, user domain.Address, cursor, size int64) ([]domain.UserBid, error) {
	res, err := m.call(ctx, "getUserBids", outputCount(2), user.ToCommon(), big.NewInt(cursor), big.NewInt(size))
	if err != nil {
		return nil, err
	}
	ids, ok := res[0].([]*big.Int)
	if !ok {
		return nil, domain.ErrInvalidResult
	}
	amounts, ok := res[1].([]*big.Int)
	if !ok || len(amounts) != len(ids) {
		return nil, xerrors.Errorf("getUserBids returned %d ids and %d amounts: %w", len(ids), len(amounts), domain.ErrInvalidResult)
	}

	bids := make([]domain.UserBid, len(ids))
	for i := range ids {
		id, err := domain.BigToInt64(ids[i])
		if err != nil {
			return nil, xerrors.Errorf("getUserBids auction id: %w", err)
		}
		bids[i] = domain.UserBid{
			AuctionId: domain.AuctionId(id),
			Amount:    domain.WeiToDecimal(amounts[i]),
		}
	}
	return bids, nil
}

func outputCount(n int) chain.Validator {
	return func(res []interface{}) error {
		if len(res) != n {
			return domain.ErrInvalidResult
		}
		return nil
	}
}

// validateAuction rejects the empty struct a lagging node returns for an auction it has not seen
func validateAuction(res []interface{}) error {
	if len(res) != auctionOutputs {
		return domain.ErrInvalidResult
	}
	nftToken, ok := res[0].(common.Address)
	if !ok {
		return domain.ErrInvalidResult
	}
	if nftToken == (common.Address{}) {
		return domain.ErrNullNftToken
	}
	return nil
}

func toOnChainAuction(res []interface{}) (*domain.OnChainAuction, error) {
	var (
		a    domain.OnChainAuction
		errs []error
	)
	addr := func(i int) domain.Address {
		v, ok := res[i].(common.Address)
		if !ok {
			errs = append(errs, domain.ErrInvalidResult)
		}
		return domain.ToAddress(v)
	}
	num := func(i int) *big.Int {
		v, err := asBig(res[i])
		if err != nil {
			errs = append(errs, err)
			return new(big.Int)
		}
		return v
	}
	int64At := func(i int) int64 {
		v, err := domain.BigToInt64(num(i))
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}
	flag := func(i int) bool {
		v, ok := res[i].(bool)
		if !ok {
			errs = append(errs, domain.ErrInvalidResult)
		}
		return v
	}

	a.NftToken = addr(0)
	a.NftTokenId = int64At(1)
	a.Owner = addr(2)
	a.Token = addr(3)
	a.TargetPrice = domain.WeiToDecimal(num(4))
	a.ReservePrice = domain.WeiToDecimal(num(5))
	a.EndTime = int64At(6)
	a.MinIncrement = domain.WeiToDecimal(num(7))
	a.IsSettled = flag(8)
	a.HighestBidder = addr(9)
	auctionType, ok := res[10].(uint8)
	if !ok {
		errs = append(errs, domain.ErrInvalidResult)
	}
	a.AuctionType = auctionType
	a.IsSold = flag(11)

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return &a, nil
}

func asBig(v interface{}) (*big.Int, error) {
	b, ok := v.(*big.Int)
	if !ok || b == nil {
		return nil, domain.ErrInvalidResult
	}
	return b, nil
}
