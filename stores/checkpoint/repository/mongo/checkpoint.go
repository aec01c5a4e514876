package mongo

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/query"
)

type checkpointMongoRepo struct {
	m query.Mongo
}

func NewCheckpointMongoRepo(mCon query.Mongo) domain.CheckpointRepo {
	return &checkpointMongoRepo{m: mCon}
}

func (r *checkpointMongoRepo) find(ctx bCtx.Ctx, name string, result interface{}) error {
	if err := r.m.FindOne(ctx, domain.TableCheckpoints, bson.M{"name": name}, result); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to FindOne")
		return err
	}
	return nil
}

func (r *checkpointMongoRepo) store(ctx bCtx.Ctx, name string, doc interface{}) error {
	if err := r.m.Upsert(ctx, domain.TableCheckpoints, bson.M{"name": name}, doc); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("failed to Upsert")
		return err
	}
	return nil
}

func (r *checkpointMongoRepo) GetCrawler(ctx bCtx.Ctx) (*domain.CrawlerState, error) {
	state := &domain.CrawlerState{}
	if err := r.find(ctx, domain.CrawlerCheckpoint, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *checkpointMongoRepo) StoreCrawler(ctx bCtx.Ctx, state *domain.CrawlerState) error {
	state.Name = domain.CrawlerCheckpoint
	return r.store(ctx, domain.CrawlerCheckpoint, state)
}

func (r *checkpointMongoRepo) GetCron(ctx bCtx.Ctx) (*domain.CronState, error) {
	state := &domain.CronState{}
	if err := r.find(ctx, domain.CronCheckpoint, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (r *checkpointMongoRepo) StoreCron(ctx bCtx.Ctx, state *domain.CronState) error {
	state.Name = domain.CronCheckpoint
	return r.store(ctx, domain.CronCheckpoint, state)
}
