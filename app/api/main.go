package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/auctionindexer/app/api/docs"
	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/database/mongoclient"
	"github.com/x-xyz/auctionindexer/base/database/redisclient"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/base/metrics"
	bValidator "github.com/x-xyz/auctionindexer/base/validator"
	"github.com/x-xyz/auctionindexer/domain/keys"
	mmiddleware "github.com/x-xyz/auctionindexer/middleware"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
	"github.com/x-xyz/auctionindexer/service/chain"
	"github.com/x-xyz/auctionindexer/service/chain/contract"
	"github.com/x-xyz/auctionindexer/service/nftmeta"
	"github.com/x-xyz/auctionindexer/service/notify"
	"github.com/x-xyz/auctionindexer/service/query"
	"github.com/x-xyz/auctionindexer/service/redis"

	auction_delivery "github.com/x-xyz/auctionindexer/stores/auction/delivery/http"
	auction_repository "github.com/x-xyz/auctionindexer/stores/auction/repository/mongo"
	auction_usecase "github.com/x-xyz/auctionindexer/stores/auction/usecase"
	checkpoint_repository "github.com/x-xyz/auctionindexer/stores/checkpoint/repository/mongo"
	checkpoint_usecase "github.com/x-xyz/auctionindexer/stores/checkpoint/usecase"
	cron_delivery "github.com/x-xyz/auctionindexer/stores/cron/delivery/http"
	cron_usecase "github.com/x-xyz/auctionindexer/stores/cron/usecase"
	hc_delivery "github.com/x-xyz/auctionindexer/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/auctionindexer/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/auctionindexer/stores/healthcheck/usecase"
	marketplace_delivery "github.com/x-xyz/auctionindexer/stores/marketplace/delivery/http"
	userbids_delivery "github.com/x-xyz/auctionindexer/stores/userbids/delivery/http"
	userbids_repository "github.com/x-xyz/auctionindexer/stores/userbids/repository/mongo"
	userbids_usecase "github.com/x-xyz/auctionindexer/stores/userbids/usecase"
)

func init() {
	configPath := pflag.String("config", "infra/configs/api/config.yaml", "path of the yaml config")
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

//	@title			Auction Indexer API
//	@version		1.0
//	@description	Indexed auction state of the marketplace contract.
func main() {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := bCtx.Background()
	ctxTimeout := viper.GetDuration("context.timeout")

	context.Info("init mongo")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(
		viper.GetString("mongo.uri"),
		viper.GetString("mongo.authDBName"),
		viper.GetString("mongo.dbName"),
		viper.GetBool("mongo.enableSSL"),
		true,
		viper.GetFloat64("mongo.poolMultiplier"),
	)
	q := query.New(mongoClient, checkIndex)
	if checkIndex {
		if err := auction_repository.EnsureIndexes(context, q); err != nil {
			context.WithField("err", err).Panic("auction_repository.EnsureIndexes failed")
		}
	}

	// redis is optional, both caches fall back to process memory
	var redisCache redis.Service
	metaCache := provider.NewLocal(keys.PfxNftMeta, 8)
	if uri := viper.GetString("redis_cache.uri"); uri != "" {
		context.Info("init redis cache")
		name := viper.GetString("redis_cache.name")
		pool := redisclient.MustConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		})
		redisCache = redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
		metaCache = provider.NewLayered(metaCache, provider.NewRedis(redisCache))
	}
	mmiddleware.SetupCache(redisCache)

	context.Info("connecting chain client")
	chainClient, err := chain.NewClient(context, chain.ClientCfg{
		RpcUrl:  viper.GetString("chain.rpcUrl"),
		Timeout: viper.GetDuration("chain.timeout"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}
	invoker := chain.NewInvoker(chainClient, chain.InvokerCfg{
		MaxRetries: viper.GetInt("retry.maxRetries"),
		Interval:   viper.GetDuration("retry.interval"),
	})
	marketplace := contract.NewMarketplace(invoker, common.HexToAddress(viper.GetString("chain.marketplace")))

	notifier, err := notify.NewDiscord(notify.DiscordConfig{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
		AssetUrl:  viper.GetString("discord.assetUrl"),
	})
	if err != nil {
		context.WithField("err", err).Panic("notify.NewDiscord failed")
	}

	// repos
	auctionRepo := auction_repository.NewAuctionMongoRepo(q)
	userBidsRepo := userbids_repository.NewUserBidsMongoRepo(q)
	checkpointRepo := checkpoint_repository.NewCheckpointMongoRepo(q)

	// usecases
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
		Repo:            auctionRepo,
		Marketplace:     marketplace,
		NftMeta:         nftMeta,
		UserBids:        userBids,
		ScanConcurrency: viper.GetInt("scan.concurrency"),
	})
	checkpoint := checkpoint_usecase.NewCheckpointUseCase(checkpointRepo, ctxTimeout)
	sweeper := cron_usecase.NewSweeper(&cron_usecase.SweeperCfg{
		Auction:      auction,
		Marketplace:  marketplace,
		Checkpoint:   checkpoint,
		Notifier:     notifier,
		MaxRefreshes: viper.GetInt("cron.maxRefreshes"),
		MaxProcessed: viper.GetInt("cron.maxAuctionsProcessed"),
		StaleAfter:   viper.GetDuration("cron.staleAfter"),
	})
	healthCheck := hc_usecase.New(&hc_usecase.HealthCheckCfg{
		Repo:       hc_repo.New(q, redisCache),
		Chain:      chainClient,
		Checkpoint: checkpoint,
	})

	// delivery
	hc_delivery.New(e, healthCheck)
	auction_delivery.New(e, auction, viper.GetDuration("http.listCacheTtl"))
	userbids_delivery.New(e, userBids)
	cron_delivery.New(e, sweeper)
	marketplace_delivery.New(e, marketplace, auction)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := bCtx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	chainClient.Close()
}
