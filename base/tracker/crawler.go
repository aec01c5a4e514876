package tracker

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/goroutine"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/base/metrics"
	"github.com/x-xyz/auctionindexer/domain"
)

const (
	defaultInterval     = 5 * time.Second
	defaultMaxBatchSize = 100
	// FilterTimeout bounds a single batched log query
	FilterTimeout = 30 * time.Second
)

var met = metrics.New("crawler")

type CrawlerCfg struct {
	Client     domain.ChainClient
	Auction    domain.AuctionUseCase
	Checkpoint domain.CheckpointUseCase
	// Notifier is told about every sale applied, optional
	Notifier domain.Notifier

	Contract     common.Address
	Interval     time.Duration
	MaxBatchSize uint64
	// StartBlock seeds an empty checkpoint, 0 means the current head
	StartBlock uint64
	// Subscribe enables the live log listener
	Subscribe bool
}

// Crawler polls the marketplace logs block range by block range and applies
// them to the stored auctions. At most one tick runs at a time.
type Crawler struct {
	client     domain.ChainClient
	auction    domain.AuctionUseCase
	checkpoint domain.CheckpointUseCase
	notifier   domain.Notifier

	contract     common.Address
	topics       [][]common.Hash
	interval     time.Duration
	maxBatchSize uint64
	startBlock   uint64
	subscribe    bool

	processing    int32
	lastProcessed uint64
	stoppedCh     chan struct{}
	// ticks spawned by loop that have not returned yet
	inflight sync.WaitGroup
}

func NewCrawler(cfg *CrawlerCfg) *Crawler {
	c := &Crawler{
		client:       cfg.Client,
		auction:      cfg.Auction,
		checkpoint:   cfg.Checkpoint,
		notifier:     cfg.Notifier,
		contract:     cfg.Contract,
		topics:       marketplaceTopics(),
		interval:     cfg.Interval,
		maxBatchSize: cfg.MaxBatchSize,
		startBlock:   cfg.StartBlock,
		subscribe:    cfg.Subscribe,
		stoppedCh:    make(chan struct{}),
	}
	if c.interval <= 0 {
		c.interval = defaultInterval
	}
	if c.maxBatchSize == 0 {
		c.maxBatchSize = defaultMaxBatchSize
	}
	return c
}

// Start loads the checkpoint and runs the poll loop until ctx is done
func (f *Crawler) Start(ctx bCtx.Ctx) error {
	last, err := f.setupCheckpoint(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("setupCheckpoint failed")
		return err
	}
	atomic.StoreUint64(&f.lastProcessed, last)
	ctx.WithField("lastBlockProcessed", last).Info("crawler starting")

	if f.subscribe {
		goroutine.RecoverableGo(func() {
			newSubscriptionLogger(f.client, f.contract, f.topics).run(ctx)
		}, goroutine.WithName("crawler.subscription"))
	}

	goroutine.RecoverableGo(func() {
		f.loop(ctx)
	}, goroutine.WithName("crawler.loop"), goroutine.WithAfterEnded(func() {
		close(f.stoppedCh)
	}))
	return nil
}

// Wait blocks until the loop has stopped and its last tick has returned
func (f *Crawler) Wait() {
	<-f.stoppedCh
	f.inflight.Wait()
}

func (f *Crawler) LastProcessed() uint64 {
	return atomic.LoadUint64(&f.lastProcessed)
}

func (f *Crawler) loop(ctx bCtx.Ctx) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	tick := 0
	for {
		select {
		case <-ctx.Done():
			ctx.Info("crawler stopped")
			return
		case <-ticker.C:
			tick++
			// each tick gets its own goroutine so a slow batch makes the next ticks skip
			c := bCtx.WithValue(ctx, "tick", tick)
			f.inflight.Add(1)
			goroutine.RecoverableGo(func() {
				defer f.inflight.Done()
				_, _ = f.Tick(c)
			}, goroutine.WithName("crawler.tick"))
		}
	}
}

// Tick processes at most one block range. It returns false without doing
// anything while a previous tick is still in flight.
func (f *Crawler) Tick(ctx bCtx.Ctx) (bool, error) {
	if !atomic.CompareAndSwapInt32(&f.processing, 0, 1) {
		met.BumpSum("tick.skipped", 1)
		ctx.Debug("already processing")
		return false, nil
	}
	defer atomic.StoreInt32(&f.processing, 0)

	ender := met.BumpTime("tick.time")
	defer ender.End()

	if err := f.processNext(ctx); err != nil {
		met.BumpSum("tick.err", 1)
		ctx.WithField("err", err).Error("tick failed, reconnecting")
		if rErr := f.client.Reconnect(ctx); rErr != nil {
			ctx.WithField("err", rErr).Error("client.Reconnect failed")
		}
		return true, err
	}
	return true, nil
}

func (f *Crawler) processNext(ctx bCtx.Ctx) error {
	head, err := f.client.BlockNumber(ctx)
	if err != nil {
		return err
	}
	met.BumpAvg("head", float64(head))

	last := f.LastProcessed()
	r, ok := nextRange(last, head, f.maxBatchSize)
	if !ok {
		ctx.WithField("next", last+1).Debug("waiting for block")
		return nil
	}
	ctx = bCtx.WithFields(ctx, log.Fields{
		"fromBlock": r.begin,
		"toBlock":   r.end,
		"behind":    head - r.end,
	})

	tCtx, cancel := bCtx.WithTimeout(ctx, FilterTimeout)
	logs, err := f.client.FilterLogs(tCtx, r.query(f.contract, f.topics))
	cancel()
	if err != nil {
		ctx.WithField("err", err).Error("client.FilterLogs failed")
		return err
	}
	if len(logs) > 0 {
		ctx.WithField("#logs", len(logs)).Info("received logs")
	}

	for i := range logs {
		f.processLog(ctx, &logs[i])
	}
	met.BumpSum("events", float64(len(logs)))

	if err := f.checkpoint.StoreCrawler(ctx, &domain.CrawlerState{
		Name:               domain.CrawlerCheckpoint,
		LastBlockProcessed: r.end,
	}); err != nil {
		ctx.WithField("err", err).Error("checkpoint.StoreCrawler failed")
		return err
	}
	atomic.StoreUint64(&f.lastProcessed, r.end)
	met.BumpAvg("lastBlock", float64(r.end))
	ctx.Info("processed block range")
	return nil
}

// processLog applies one log. Failures stay inside the auction they concern.
func (f *Crawler) processLog(ctx bCtx.Ctx, l *types.Log) {
	ctx = bCtx.WithFields(ctx, log.Fields{
		"block":    l.BlockNumber,
		"logIndex": l.Index,
		"txHash":   l.TxHash.Hex(),
	})
	if l.Removed {
		ctx.Warn("skipping removed log")
		return
	}

	ev, err := decodeMarketplaceLog(l)
	if err != nil {
		ctx.WithField("err", err).Warn("decodeMarketplaceLog failed")
		return
	}
	ctx = bCtx.WithFields(ctx, log.Fields{
		"event":     ev.Kind(),
		"auctionId": ev.GetAuctionId(),
	})
	ctx.Info("applying event")

	if err := f.auction.ApplyEvent(ctx, ev); err != nil {
		var callErr *domain.ContractCallFailed
		if errors.As(err, &callErr) {
			ctx.WithFields(log.Fields{
				"err":     err,
				"method":  callErr.Method,
				"args":    callErr.Args,
				"retries": callErr.Retries,
			}).Error("contract call failed")
		} else {
			ctx.WithField("err", err).Error("auction.ApplyEvent failed")
		}
		return
	}

	if sold, ok := ev.(*domain.SoldEvent); ok && f.notifier != nil {
		f.notifySold(ctx, sold)
	}
}

func (f *Crawler) notifySold(ctx bCtx.Ctx, ev *domain.SoldEvent) {
	a, err := f.auction.Get(ctx, ev.GetAuctionId())
	if err != nil {
		ctx.WithField("err", err).Warn("auction.Get failed, skipping sale notification")
		return
	}
	if err := f.notifier.AuctionSold(ctx, a); err != nil {
		ctx.WithField("err", err).Warn("notifier.AuctionSold failed")
	}
}

func (f *Crawler) setupCheckpoint(ctx bCtx.Ctx) (uint64, error) {
	state, err := f.checkpoint.GetCrawler(ctx)
	if err == nil {
		return state.LastBlockProcessed, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	start := f.startBlock
	if start == 0 {
		head, err := f.client.BlockNumber(ctx)
		if err != nil {
			return 0, err
		}
		start = head
	}
	// the checkpoint is the last processed block, crawling resumes right after it
	last := start - 1
	if start == 0 {
		last = 0
	}
	if err := f.checkpoint.StoreCrawler(ctx, &domain.CrawlerState{
		Name:               domain.CrawlerCheckpoint,
		LastBlockProcessed: last,
	}); err != nil {
		return 0, err
	}
	ctx.WithField("startBlock", start).Info("initialized crawler checkpoint")
	return last, nil
}
