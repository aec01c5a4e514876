package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/query"
)

const defaultLimit = 20

// sort keys accepted by FindAll, mapped to document fields
var sortFields = map[string]string{
	"auctionId":  "auctionId",
	"endTime":    "endTime",
	"nftTokenId": "nftTokenId",
	"rarity":     "nftData.rarity",
	"tier":       "nftData.tier",
}

var Indexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "auctionId", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "nftToken", Value: 1}, {Key: "nftTokenId", Value: 1}, {Key: "auctionId", Value: 1}}},
	{Keys: bson.D{{Key: "endTime", Value: 1}}},
	{Keys: bson.D{{Key: "highestBidder", Value: 1}}},
}

type auctionMongoRepo struct {
	m query.Mongo
}

func NewAuctionMongoRepo(mCon query.Mongo) domain.AuctionRepo {
	return &auctionMongoRepo{m: mCon}
}

func idSelector(id domain.AuctionId) bson.M {
	return bson.M{"auctionId": id}
}

func (r *auctionMongoRepo) FindOne(ctx bCtx.Ctx, id domain.AuctionId) (*domain.Auction, error) {
	a := &domain.Auction{}
	if err := r.m.FindOne(ctx, domain.TableAuctions, idSelector(id), a); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to FindOne")
		return nil, err
	}
	return a, nil
}

func (r *auctionMongoRepo) Exists(ctx bCtx.Ctx, id domain.AuctionId) (bool, error) {
	n, err := r.m.Count(ctx, domain.TableAuctions, idSelector(id))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": id,
		}).Error("failed to Count")
		return false, err
	}
	return n > 0, nil
}

func (r *auctionMongoRepo) Upsert(ctx bCtx.Ctx, a *domain.Auction) error {
	if err := r.m.Upsert(ctx, domain.TableAuctions, idSelector(a.AuctionId), a); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"auctionId": a.AuctionId,
		}).Error("failed to Upsert")
		return err
	}
	return nil
}

func (r *auctionMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...domain.AuctionFindAllOptionsFunc) ([]*domain.Auction, error) {
	opts, err := domain.GetAuctionFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("GetAuctionFindAllOptions failed")
		return nil, err
	}

	qry, sorts, limit, err := toQuery(opts)
	if err != nil {
		return nil, err
	}

	res := []*domain.Auction{}
	if err := r.m.Search(ctx, domain.TableAuctions, 0, limit, sorts, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to Search")
		return nil, err
	}
	return res, nil
}

func toQuery(opts domain.AuctionFindAllOptions) (bson.M, []string, int, error) {
	qry := bson.M{}
	cond := func(field, op string, val interface{}) {
		m, ok := qry[field].(bson.M)
		if !ok {
			m = bson.M{}
			qry[field] = m
		}
		m[op] = val
	}

	if len(opts.AuctionIds) > 0 {
		cond("auctionId", "$in", opts.AuctionIds)
	}
	if opts.NftToken != nil {
		qry["nftToken"] = *opts.NftToken
	}
	if opts.NftTokenId != nil {
		qry["nftTokenId"] = *opts.NftTokenId
	}
	if opts.Owner != nil {
		qry["owner"] = *opts.Owner
	}
	if opts.Token != nil {
		qry["token"] = *opts.Token
	}
	if opts.IsSettled != nil {
		qry["isSettled"] = *opts.IsSettled
	}
	if opts.IsSold != nil {
		qry["isSold"] = *opts.IsSold
	}
	if opts.Bidder != nil {
		qry["highestBidder"] = *opts.Bidder
	}
	if opts.AuctionType != nil {
		qry["auctionType"] = *opts.AuctionType
	}
	if opts.LastToken != nil {
		qry["lastToken"] = *opts.LastToken
	}
	if opts.Series != nil {
		qry["nftData.series"] = *opts.Series
	}
	if opts.Rarity != nil {
		qry["nftData.rarity"] = *opts.Rarity
	}
	if opts.Tier != nil {
		qry["nftData.tier"] = *opts.Tier
	}
	if opts.EndsBefore != nil {
		cond("endTime", "$lt", *opts.EndsBefore)
	}
	if opts.EndsAfter != nil {
		cond("endTime", "$gt", *opts.EndsAfter)
	}

	sortBy := "auctionId"
	if opts.SortBy != nil {
		sortBy = *opts.SortBy
	}
	field, ok := sortFields[sortBy]
	if !ok {
		return nil, nil, 0, domain.ErrBadParamInput
	}
	desc := opts.SortDir != nil && *opts.SortDir == domain.SortDirDesc

	if opts.StartAfter != nil {
		op := "$gt"
		if desc {
			op = "$lt"
		}
		if _, clash := qry[field]; clash {
			if _, isCond := qry[field].(bson.M); !isCond {
				// equality on the sort field already pins it
				op = ""
			}
		}
		if m, ok := qry[field].(bson.M); ok && m[op] != nil {
			qry["$and"] = []bson.M{{field: bson.M{op: opts.StartAfter}}}
		} else if op != "" {
			cond(field, op, opts.StartAfter)
		}
	}

	sorts := []string{field}
	if desc {
		sorts[0] = "-" + field
	}
	if field != "auctionId" {
		sorts = append(sorts, "auctionId")
	}

	limit := defaultLimit
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	return qry, sorts, limit, nil
}

// EnsureIndexes creates the indexes FindAll and the nft lookups rely on
func EnsureIndexes(ctx bCtx.Ctx, m query.Mongo) error {
	return m.EnsureIndexes(ctx, domain.TableAuctions, Indexes)
}
