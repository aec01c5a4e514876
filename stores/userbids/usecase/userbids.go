package usecase

import (
	"errors"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
)

type UserBidsUseCaseCfg struct {
	Repo        domain.UserBidsRepo
	AuctionRepo domain.AuctionRepo
	Marketplace domain.MarketplaceContract
}

type impl struct {
	repo        domain.UserBidsRepo
	auctionRepo domain.AuctionRepo
	marketplace domain.MarketplaceContract
}

func NewUserBidsUseCase(cfg *UserBidsUseCaseCfg) domain.UserBidsUseCase {
	return &impl{
		repo:        cfg.Repo,
		auctionRepo: cfg.AuctionRepo,
		marketplace: cfg.Marketplace,
	}
}

func (im *impl) Get(c bCtx.Ctx, address domain.Address) (*domain.UserBids, error) {
	address = address.ToLower()
	bids, err := im.repo.FindOne(c, address)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.UserBids{Address: address, Bids: []domain.UserBid{}}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("repo.FindOne failed")
		return nil, err
	}
	return bids, nil
}

func (im *impl) GetInfo(c bCtx.Ctx, address domain.Address) (*domain.UserBidsInfo, error) {
	bids, err := im.Get(c, address)
	if err != nil {
		return nil, err
	}

	res := &domain.UserBidsInfo{Address: bids.Address, Bids: make([]domain.UserBidInfo, len(bids.Bids))}
	if len(bids.Bids) == 0 {
		return res, nil
	}

	ids := make([]domain.AuctionId, len(bids.Bids))
	for i, b := range bids.Bids {
		ids[i] = b.AuctionId
	}
	auctions, err := im.auctionRepo.FindAll(c, domain.AuctionWithIds(ids...), domain.AuctionWithLimit(0))
	if err != nil {
		c.WithField("err", err).Error("auctionRepo.FindAll failed")
		return nil, err
	}
	byId := make(map[domain.AuctionId]*domain.Auction, len(auctions))
	for _, a := range auctions {
		byId[a.AuctionId] = a
	}

	for i, b := range bids.Bids {
		res.Bids[i] = domain.UserBidInfo{UserBid: b, Auction: byId[b.AuctionId]}
	}
	return res, nil
}

func (im *impl) Refresh(c bCtx.Ctx, address domain.Address) (*domain.UserBids, error) {
	address = address.ToLower()
	c = bCtx.WithValue(c, "address", address)

	length, err := im.marketplace.UserBidsLength(c, address)
	if err != nil {
		c.WithField("err", err).Error("marketplace.UserBidsLength failed")
		return nil, err
	}

	bids := make([]domain.UserBid, 0, length)
	for cursor := int64(0); cursor < length; cursor += domain.UserBidsPageSize {
		page, err := im.marketplace.UserBids(c, address, cursor, domain.UserBidsPageSize)
		if err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"cursor": cursor,
			}).Error("marketplace.UserBids failed")
			return nil, err
		}
		bids = append(bids, page...)
	}

	res := &domain.UserBids{Address: address, Bids: bids}
	if err := im.repo.Upsert(c, res); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return nil, err
	}
	return res, nil
}
