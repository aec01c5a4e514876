package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/query"
)

type userBidsMongoRepo struct {
	m query.Mongo
}

func NewUserBidsMongoRepo(mCon query.Mongo) domain.UserBidsRepo {
	return &userBidsMongoRepo{m: mCon}
}

func (r *userBidsMongoRepo) FindOne(ctx bCtx.Ctx, address domain.Address) (*domain.UserBids, error) {
	res := &domain.UserBids{}
	if err := r.m.FindOne(ctx, domain.TableUserBids, bson.M{"address": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to FindOne")
		return nil, err
	}
	return res, nil
}

func (r *userBidsMongoRepo) Upsert(ctx bCtx.Ctx, bids *domain.UserBids) error {
	bids.Address = bids.Address.ToLower()
	if err := r.m.Upsert(ctx, domain.TableUserBids, bson.M{"address": bids.Address}, bids); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": bids.Address,
		}).Error("failed to Upsert")
		return err
	}
	return nil
}
