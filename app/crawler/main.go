package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/database/mongoclient"
	"github.com/x-xyz/auctionindexer/base/database/redisclient"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/base/metrics"
	"github.com/x-xyz/auctionindexer/base/tracker"
	hcdomain "github.com/x-xyz/auctionindexer/domain/healthcheck"
	mmiddleware "github.com/x-xyz/auctionindexer/middleware"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
	"github.com/x-xyz/auctionindexer/service/chain"
	"github.com/x-xyz/auctionindexer/service/chain/contract"
	"github.com/x-xyz/auctionindexer/service/nftmeta"
	"github.com/x-xyz/auctionindexer/service/notify"
	"github.com/x-xyz/auctionindexer/service/query"
	"github.com/x-xyz/auctionindexer/service/redis"

	auction_repository "github.com/x-xyz/auctionindexer/stores/auction/repository/mongo"
	auction_usecase "github.com/x-xyz/auctionindexer/stores/auction/usecase"
	checkpoint_repository "github.com/x-xyz/auctionindexer/stores/checkpoint/repository/mongo"
	checkpoint_usecase "github.com/x-xyz/auctionindexer/stores/checkpoint/usecase"
	hc_delivery "github.com/x-xyz/auctionindexer/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/auctionindexer/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/auctionindexer/stores/healthcheck/usecase"
	userbids_repository "github.com/x-xyz/auctionindexer/stores/userbids/repository/mongo"
	userbids_usecase "github.com/x-xyz/auctionindexer/stores/userbids/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/crawler/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	ctxTimeout := viper.GetDuration("context.timeout")
	rpcUrl := viper.GetString("chain.rpcUrl")
	wsUrl := viper.GetString("chain.wsUrl")
	marketplaceAddr := viper.GetString("chain.marketplace")
	crawlerInfo := viper.Sub("crawler")

	ctx.WithFields(log.Fields{
		"rpcUrl":       rpcUrl,
		"wsUrl":        wsUrl,
		"marketplace":  marketplaceAddr,
		"interval":     crawlerInfo.GetDuration("interval"),
		"maxBatchSize": crawlerInfo.GetUint64("maxBatchSize"),
	}).Info("config")

	ctx.Info("init mongo")
	q := initMongo()
	redisCache := initRedis(ctx)

	ctx.Info("connecting chain client")
	chainClient, err := chain.NewClient(ctx, chain.ClientCfg{
		RpcUrl:  rpcUrl,
		WsUrl:   wsUrl,
		Timeout: viper.GetDuration("chain.timeout"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("chain.NewClient failed")
	}
	invoker := chain.NewInvoker(chainClient, chain.InvokerCfg{
		MaxRetries: viper.GetInt("retry.maxRetries"),
		Interval:   viper.GetDuration("retry.interval"),
	})
	marketplace := contract.NewMarketplace(invoker, common.HexToAddress(marketplaceAddr))

	notifier, err := notify.NewDiscord(notify.DiscordConfig{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
		AssetUrl:  viper.GetString("discord.assetUrl"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("notify.NewDiscord failed")
	}

	// repos
	auctionRepo := auction_repository.NewAuctionMongoRepo(q)
	userBidsRepo := userbids_repository.NewUserBidsMongoRepo(q)
	checkpointRepo := checkpoint_repository.NewCheckpointMongoRepo(q)

	// usecases
	metaCache := provider.NewLocal("nftmeta", 8)
	if redisCache != nil {
		metaCache = provider.NewLayered(metaCache, provider.NewRedis(redisCache))
	}
	nftMeta := nftmeta.NewClient(nftmeta.ClientCfg{
		BaseUrl:    viper.GetString("nftmeta.baseUrl"),
		HttpClient: &http.Client{},
		Timeout:    viper.GetDuration("nftmeta.timeout"),
		Series:     viper.GetStringMapString("nftmeta.series"),
		Cache:      metaCache,
		CacheTtl:   viper.GetDuration("nftmeta.cacheTtl"),
	})
	userBids := userbids_usecase.NewUserBidsUseCase(&userbids_usecase.UserBidsUseCaseCfg{
		Repo:        userBidsRepo,
		AuctionRepo: auctionRepo,
		Marketplace: marketplace,
	})
	auction := auction_usecase.NewAuctionUseCase(&auction_usecase.AuctionUseCaseCfg{
		Repo:        auctionRepo,
		Marketplace: marketplace,
		NftMeta:     nftMeta,
		UserBids:    userBids,
	})
	checkpoint := checkpoint_usecase.NewCheckpointUseCase(checkpointRepo, ctxTimeout)

	// start server to pass cloud run health check
	startEchoServer(hc_usecase.New(&hc_usecase.HealthCheckCfg{
		Repo:       hc_repo.New(q, redisCache),
		Chain:      chainClient,
		Checkpoint: checkpoint,
	}))

	crawler := tracker.NewCrawler(&tracker.CrawlerCfg{
		Client:       chainClient,
		Auction:      auction,
		Checkpoint:   checkpoint,
		Notifier:     notifier,
		Contract:     common.HexToAddress(marketplaceAddr),
		Interval:     crawlerInfo.GetDuration("interval"),
		MaxBatchSize: crawlerInfo.GetUint64("maxBatchSize"),
		StartBlock:   crawlerInfo.GetUint64("startBlock"),
		Subscribe:    wsUrl != "",
	})
	if err := crawler.Start(ctx); err != nil {
		ctx.WithField("err", err).Panic("crawler.Start failed")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	ctx.WithField("signal", sig).Info("received signal")

	cancel()
	crawler.Wait()
	chainClient.Close()
	ctx.WithField("lastBlockProcessed", crawler.LastProcessed()).Info("crawler shut down")
}

func startEchoServer(hc hcdomain.HealthCheckUsecase) {
	context := bCtx.Background()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	hc_delivery.New(e, hc)

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.Error("shutting down the server")
		}
	}()
}

func initMongo() query.Mongo {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)
	if checkIndex {
		if err := auction_repository.EnsureIndexes(bCtx.Background(), q); err != nil {
			log.Log().WithField("err", err).Panic("auction_repository.EnsureIndexes failed")
		}
	}
	return q
}

// initRedis returns nil when no redis is configured
func initRedis(ctx bCtx.Ctx) redis.Service {
	uri := viper.GetString("redis_cache.uri")
	if uri == "" {
		return nil
	}
	ctx.Info("init redis cache")
	name := viper.GetString("redis_cache.name")
	pool := redisclient.MustConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	return redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
}
