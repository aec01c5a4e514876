package usecase

import (
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
)

type memRepo struct {
	mu      sync.Mutex
	records map[domain.AuctionId]*domain.Auction
	upserts int
}

func newMemRepo(records ...*domain.Auction) *memRepo {
	r := &memRepo{records: map[domain.AuctionId]*domain.Auction{}}
	for _, a := range records {
		r.records[a.AuctionId] = cloneAuction(a)
	}
	return r
}

func (r *memRepo) FindOne(_ bCtx.Ctx, id domain.AuctionId) (*domain.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneAuction(a), nil
}

func (r *memRepo) Exists(_ bCtx.Ctx, id domain.AuctionId) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[id]
	return ok, nil
}

func (r *memRepo) Upsert(_ bCtx.Ctx, a *domain.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[a.AuctionId] = cloneAuction(a)
	r.upserts++
	return nil
}

func (r *memRepo) FindAll(_ bCtx.Ctx, optFns ...domain.AuctionFindAllOptionsFunc) ([]*domain.Auction, error) {
	opts, err := domain.GetAuctionFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []*domain.Auction{}
	for _, a := range r.records {
		if opts.NftToken != nil && a.NftToken != *opts.NftToken {
			continue
		}
		if opts.NftTokenId != nil && a.NftTokenId != *opts.NftTokenId {
			continue
		}
		if len(opts.AuctionIds) > 0 && !containsId(opts.AuctionIds, a.AuctionId) {
			continue
		}
		res = append(res, cloneAuction(a))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].AuctionId < res[j].AuctionId })
	return res, nil
}

func (r *memRepo) get(id domain.AuctionId) *domain.Auction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[id]
}

func (r *memRepo) writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upserts
}

func containsId(ids []domain.AuctionId, id domain.AuctionId) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

var errChain = errors.New("chain unavailable")

// fakeMarketplace serves contract reads from maps
type fakeMarketplace struct {
	auctions   map[domain.AuctionId]*domain.OnChainAuction
	balances   map[domain.AuctionId]map[domain.Address]decimal.Decimal
	finals     map[domain.AuctionId]decimal.Decimal
	lastPrices map[domain.NftKey]decimal.Decimal
	lastTokens map[domain.NftKey]domain.Address
	// failGetAuction counts down GetAuction failures per id
	failGetAuction map[domain.AuctionId]int
	balanceCalls   int
}

func newFakeMarketplace() *fakeMarketplace {
	return &fakeMarketplace{
		auctions:       map[domain.AuctionId]*domain.OnChainAuction{},
		balances:       map[domain.AuctionId]map[domain.Address]decimal.Decimal{},
		finals:         map[domain.AuctionId]decimal.Decimal{},
		lastPrices:     map[domain.NftKey]decimal.Decimal{},
		lastTokens:     map[domain.NftKey]domain.Address{},
		failGetAuction: map[domain.AuctionId]int{},
	}
}

func (f *fakeMarketplace) setBalance(id domain.AuctionId, bidder domain.Address, v decimal.Decimal) {
	if f.balances[id] == nil {
		f.balances[id] = map[domain.Address]decimal.Decimal{}
	}
	f.balances[id][bidder] = v
}

func (f *fakeMarketplace) AuctionsLength(bCtx.Ctx) (int64, error) {
	return int64(len(f.auctions)), nil
}

func (f *fakeMarketplace) GetAuction(_ bCtx.Ctx, id domain.AuctionId) (*domain.OnChainAuction, error) {
	if f.failGetAuction[id] > 0 {
		f.failGetAuction[id]--
		return nil, &domain.ContractCallFailed{Method: "auctions", Args: []interface{}{id}, LastErr: errChain}
	}
	oc, ok := f.auctions[id]
	if !ok {
		return nil, &domain.ContractCallFailed{Method: "auctions", Args: []interface{}{id}, LastErr: domain.ErrNullNftToken}
	}
	cp := *oc
	return &cp, nil
}

func (f *fakeMarketplace) LastPrice(_ bCtx.Ctx, token domain.Address, tokenId int64) (decimal.Decimal, error) {
	return f.lastPrices[domain.NftKey{NftToken: token, NftTokenId: tokenId}], nil
}

func (f *fakeMarketplace) LastToken(_ bCtx.Ctx, token domain.Address, tokenId int64) (domain.Address, error) {
	if t, ok := f.lastTokens[domain.NftKey{NftToken: token, NftTokenId: tokenId}]; ok {
		return t, nil
	}
	return domain.EmptyAddress, nil
}

func (f *fakeMarketplace) FinalHighestBid(_ bCtx.Ctx, id domain.AuctionId) (decimal.Decimal, error) {
	return f.finals[id], nil
}

func (f *fakeMarketplace) BidBalance(_ bCtx.Ctx, id domain.AuctionId, bidder domain.Address) (decimal.Decimal, error) {
	f.balanceCalls++
	return f.balances[id][bidder], nil
}

func (f *fakeMarketplace) UserBidsLength(bCtx.Ctx, domain.Address) (int64, error) {
	return 0, nil
}

func (f *fakeMarketplace) UserBids(bCtx.Ctx, domain.Address, int64, int64) ([]domain.UserBid, error) {
	return nil, nil
}

type fakeNftMeta struct {
	err error
}

func (f *fakeNftMeta) Get(_ bCtx.Ctx, _ domain.Address, tokenId int64) (*domain.NftData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.NftData{Id: decimal.NewFromInt(tokenId).String(), Series: "hammer", Rarity: 2, Tier: 1}, nil
}
