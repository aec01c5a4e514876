package usecase

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
)

const defaultScanConcurrency = 16

type AuctionUseCaseCfg struct {
	Repo        domain.AuctionRepo
	Marketplace domain.MarketplaceContract
	NftMeta     domain.NftMetaUseCase
	UserBids    domain.UserBidsUseCase
	// ScanConcurrency bounds the existence checks of FixMissingAuctions
	ScanConcurrency int
}

type impl struct {
	repo            domain.AuctionRepo
	marketplace     domain.MarketplaceContract
	nftMeta         domain.NftMetaUseCase
	userBids        domain.UserBidsUseCase
	scanConcurrency int
}

func NewAuctionUseCase(cfg *AuctionUseCaseCfg) domain.AuctionUseCase {
	concurrency := cfg.ScanConcurrency
	if concurrency <= 0 {
		concurrency = defaultScanConcurrency
	}
	return &impl{
		repo:            cfg.Repo,
		marketplace:     cfg.Marketplace,
		nftMeta:         cfg.NftMeta,
		userBids:        cfg.UserBids,
		scanConcurrency: concurrency,
	}
}

func (im *impl) Get(c bCtx.Ctx, id domain.AuctionId) (*domain.Auction, error) {
	return im.repo.FindOne(c, id)
}

func (im *impl) GetOrBuild(c bCtx.Ctx, id domain.AuctionId) (*domain.Auction, error) {
	a, err := im.repo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return im.Rebuild(c, id, false)
	}
	return a, err
}

func (im *impl) FindAll(c bCtx.Ctx, opts ...domain.AuctionFindAllOptionsFunc) ([]*domain.Auction, error) {
	return im.repo.FindAll(c, opts...)
}

func (im *impl) ApplyEvent(c bCtx.Ctx, ev domain.MarketplaceEvent) error {
	id := ev.GetAuctionId()
	c = bCtx.WithFields(c, log.Fields{
		"auctionId": id,
		"event":     ev.Kind(),
	})

	stored, err := im.repo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		stored = nil
	} else if err != nil {
		return err
	}

	d := decide(ev, stored)
	a := stored
	if d.rebuild {
		if a, err = im.Rebuild(c, id, d.onList); err != nil {
			c.WithField("err", err).Error("Rebuild failed")
			return err
		}
	}

	if d.patch != nil && a != nil {
		facts := chainFacts{}
		if d.needsFacts {
			if facts, err = im.readFacts(c, id, d.account); err != nil {
				return err
			}
		}
		next := cloneAuction(a)
		d.patch(next, facts)
		if !sameAuction(a, next) {
			if err := im.repo.Upsert(c, next); err != nil {
				return err
			}
		}
		a = next
	}

	if d.propagate && a != nil {
		if err := im.PropagateLastSale(c, a.NftKey(), a.LastPrice, a.LastToken); err != nil {
			return err
		}
	}

	if !d.account.IsNull() {
		if _, err := im.userBids.Refresh(c, d.account); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"account": d.account,
			}).Error("userBids.Refresh failed")
			return err
		}
	}
	return nil
}

func (im *impl) readFacts(c bCtx.Ctx, id domain.AuctionId, bidder domain.Address) (chainFacts, error) {
	balance, err := im.marketplace.BidBalance(c, id, bidder)
	if err != nil {
		c.WithField("err", err).Error("marketplace.BidBalance failed")
		return chainFacts{}, err
	}
	oc, err := im.marketplace.GetAuction(c, id)
	if err != nil {
		c.WithField("err", err).Error("marketplace.GetAuction failed")
		return chainFacts{}, err
	}
	return chainFacts{BidBalance: balance, EndTime: oc.EndTime}, nil
}

// highestBid derives the leading amount from a contract snapshot
func (im *impl) highestBid(c bCtx.Ctx, id domain.AuctionId, oc *domain.OnChainAuction) (decimal.Decimal, error) {
	if oc.IsSettled {
		return im.marketplace.FinalHighestBid(c, id)
	}
	if oc.HighestBidder.IsNull() {
		return decimal.Zero, nil
	}
	return im.marketplace.BidBalance(c, id, oc.HighestBidder)
}

func (im *impl) ChainHighestBid(c bCtx.Ctx, id domain.AuctionId) (decimal.Decimal, error) {
	oc, err := im.marketplace.GetAuction(c, id)
	if err != nil {
		return decimal.Zero, err
	}
	return im.highestBid(c, id, oc)
}

func (im *impl) Rebuild(c bCtx.Ctx, id domain.AuctionId, onList bool) (*domain.Auction, error) {
	oc, err := im.marketplace.GetAuction(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("marketplace.GetAuction failed")
		return nil, err
	}

	a := &domain.Auction{
		AuctionId:       id,
		NftToken:        oc.NftToken,
		NftTokenId:      oc.NftTokenId,
		Owner:           oc.Owner,
		Token:           oc.Token,
		TargetPrice:     oc.TargetPrice,
		ReservePrice:    oc.ReservePrice,
		EndTime:         oc.EndTime,
		MinIncrement:    oc.MinIncrement,
		IsSettled:       oc.IsSettled,
		HighestBidder:   oc.HighestBidder,
		AuctionType:     oc.AuctionType,
		IsSold:          oc.IsSold,
		HighestBid:      decimal.Zero,
		FinalHighestBid: decimal.Zero,
	}

	if a.LastPrice, err = im.marketplace.LastPrice(c, a.NftToken, a.NftTokenId); err != nil {
		return nil, err
	}
	if a.LastToken, err = im.marketplace.LastToken(c, a.NftToken, a.NftTokenId); err != nil {
		return nil, err
	}

	if !onList {
		if a.HighestBid, err = im.highestBid(c, id, oc); err != nil {
			return nil, err
		}
		if oc.IsSettled {
			a.FinalHighestBid = a.HighestBid
		}
	}

	if a.NftData, err = im.nftData(c, a.NftToken, a.NftTokenId); err != nil {
		return nil, err
	}

	if err := im.repo.Upsert(c, a); err != nil {
		return nil, err
	}
	c.WithField("auctionId", id).Info("auction rebuilt")
	return a, nil
}

func (im *impl) nftData(c bCtx.Ctx, nftToken domain.Address, tokenId int64) (*domain.NftData, error) {
	data, err := im.nftMeta.Get(c, nftToken, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"nftToken":   nftToken,
			"nftTokenId": tokenId,
		}).Error("nftMeta.Get failed")
		var mErr *domain.MetadataFetchError
		if !errors.As(err, &mErr) {
			err = &domain.MetadataFetchError{NftToken: nftToken, TokenId: tokenId, Err: err}
		}
		return nil, err
	}
	return data, nil
}

func (im *impl) RefreshAuction(c bCtx.Ctx, id domain.AuctionId) (bool, error) {
	c = bCtx.WithValue(c, "auctionId", id)

	stored, err := im.repo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		if _, err := im.Rebuild(c, id, false); err != nil {
			return false, err
		}
		return true, nil
	} else if err != nil {
		return false, err
	}

	oc, err := im.marketplace.GetAuction(c, id)
	if err != nil {
		return false, err
	}

	next := cloneAuction(stored)
	propagate := false

	switch {
	case !stored.IsSold && oc.IsSold:
		c.Warn("missed sale")
		hb, err := im.highestBid(c, id, oc)
		if err != nil {
			return false, err
		}
		lastToken, err := im.marketplace.LastToken(c, stored.NftToken, stored.NftTokenId)
		if err != nil {
			return false, err
		}
		next.IsSettled = true
		next.IsSold = true
		next.HighestBidder = oc.HighestBidder
		next.HighestBid = hb
		next.FinalHighestBid = hb
		next.LastPrice = hb
		next.LastToken = lastToken
		propagate = true

	case !stored.IsSettled && oc.IsSettled:
		c.Warn("missed settlement")
		hb, err := im.highestBid(c, id, oc)
		if err != nil {
			return false, err
		}
		next.IsSettled = true
		next.HighestBidder = oc.HighestBidder
		next.HighestBid = hb
		next.FinalHighestBid = hb

	case stored.IsSettled:
		// terminal, only the frozen amount of a sale can still drift
		if stored.IsSold {
			final, err := im.marketplace.FinalHighestBid(c, id)
			if err != nil {
				return false, err
			}
			next.FinalHighestBid = final
			next.HighestBid = final
		}

	default:
		hb, err := im.highestBid(c, id, oc)
		if err != nil {
			return false, err
		}
		next.HighestBidder = oc.HighestBidder
		next.EndTime = oc.EndTime
		next.HighestBid = hb
	}

	if next.NftData == nil {
		if next.NftData, err = im.nftData(c, next.NftToken, next.NftTokenId); err != nil {
			return false, err
		}
	}

	if sameAuction(stored, next) {
		return false, nil
	}
	if err := im.repo.Upsert(c, next); err != nil {
		return false, err
	}
	c.Info("auction refreshed")

	if propagate {
		if err := im.PropagateLastSale(c, next.NftKey(), next.LastPrice, next.LastToken); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (im *impl) AuctionsForNft(c bCtx.Ctx, nft domain.NftKey) ([]*domain.Auction, error) {
	return im.repo.FindAll(c,
		domain.AuctionWithNft(nft.NftToken, nft.NftTokenId),
		domain.AuctionWithSort("auctionId", domain.SortDirAsc),
		domain.AuctionWithLimit(0),
	)
}

func (im *impl) PropagateLastSale(c bCtx.Ctx, nft domain.NftKey, price decimal.Decimal, token domain.Address) error {
	auctions, err := im.AuctionsForNft(c, nft)
	if err != nil {
		c.WithField("err", err).Error("AuctionsForNft failed")
		return err
	}

	token = token.ToLower()
	var lastErr error
	for _, a := range auctions {
		if a.LastPrice.Equal(price) && a.LastToken == token {
			continue
		}
		a.LastPrice = price
		a.LastToken = token
		if err := im.repo.Upsert(c, a); err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		return xerrors.Errorf("propagate last sale of %s/%d: %w", nft.NftToken, nft.NftTokenId, lastErr)
	}
	return nil
}

func (im *impl) RefreshNftSalesData(c bCtx.Ctx, nft domain.NftKey) error {
	price, err := im.marketplace.LastPrice(c, nft.NftToken, nft.NftTokenId)
	if err != nil {
		return err
	}
	token, err := im.marketplace.LastToken(c, nft.NftToken, nft.NftTokenId)
	if err != nil {
		return err
	}
	return im.PropagateLastSale(c, nft, price, token)
}

func (im *impl) FixMissingAuctions(c bCtx.Ctx) (*domain.ScanReport, error) {
	total, err := im.marketplace.AuctionsLength(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.AuctionsLength failed")
		return nil, err
	}

	report := &domain.ScanReport{
		Total:   total,
		Missing: []domain.AuctionId{},
		Fixed:   []domain.AuctionId{},
		Failed:  []domain.AuctionId{},
		GivenUp: []domain.AuctionId{},
	}
	if total == 0 {
		return report, nil
	}

	type existence struct {
		id  domain.AuctionId
		ok  bool
		err error
	}

	b := goroutines.NewBatch(im.scanConcurrency, goroutines.WithBatchSize(int(total)))
	defer b.Close()
	for i := int64(0); i < total; i++ {
		id := domain.AuctionId(i)
		b.Queue(func() (interface{}, error) {
			ok, err := im.repo.Exists(c, id)
			return existence{id: id, ok: ok, err: err}, nil
		})
	}
	b.QueueComplete()

	missing := map[domain.AuctionId]bool{}
	for ret := range b.Results() {
		e, ok := ret.Value().(existence)
		if !ok {
			continue
		}
		if e.err != nil {
			c.WithFields(log.Fields{
				"err":       e.err,
				"auctionId": e.id,
			}).Warn("repo.Exists failed, treating as missing")
		}
		if !e.ok {
			missing[e.id] = true
		}
	}
	for i := int64(0); i < total; i++ {
		if id := domain.AuctionId(i); missing[id] {
			report.Missing = append(report.Missing, id)
		}
	}

	for _, id := range report.Missing {
		if _, err := im.Rebuild(c, id, false); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": id,
			}).Warn("rebuild failed, retrying later")
			report.Failed = append(report.Failed, id)
			continue
		}
		report.Fixed = append(report.Fixed, id)
	}

	for _, id := range report.Failed {
		if _, err := im.Rebuild(c, id, false); err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"auctionId": id,
			}).Error("rebuild failed twice, giving up")
			report.GivenUp = append(report.GivenUp, id)
			continue
		}
		report.Fixed = append(report.Fixed, id)
	}

	c.WithFields(log.Fields{
		"total":   report.Total,
		"missing": len(report.Missing),
		"fixed":   len(report.Fixed),
		"givenUp": len(report.GivenUp),
	}).Info("scan done")
	return report, nil
}
