package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/domain/mocks"
)

func TestStoreCrawlerOnlyAdvances(t *testing.T) {
	req := require.New(t)
	repo := &mocks.CheckpointRepo{}
	u := NewCheckpointUseCase(repo, time.Second)

	repo.On("GetCrawler", mock.Anything).Return(&domain.CrawlerState{LastBlockProcessed: 100}, nil)
	repo.On("StoreCrawler", mock.Anything, &domain.CrawlerState{LastBlockProcessed: 150}).Return(nil).Once()

	req.NoError(u.StoreCrawler(bCtx.Background(), &domain.CrawlerState{LastBlockProcessed: 150}))
	req.NoError(u.StoreCrawler(bCtx.Background(), &domain.CrawlerState{LastBlockProcessed: 90}))
	repo.AssertNumberOfCalls(t, "StoreCrawler", 1)
}

func TestStoreCrawlerFirstTime(t *testing.T) {
	repo := &mocks.CheckpointRepo{}
	u := NewCheckpointUseCase(repo, time.Second)

	repo.On("GetCrawler", mock.Anything).Return(nil, domain.ErrNotFound)
	repo.On("StoreCrawler", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, u.StoreCrawler(bCtx.Background(), &domain.CrawlerState{LastBlockProcessed: 1}))
	repo.AssertExpectations(t)
}

func TestGetCronDefaults(t *testing.T) {
	req := require.New(t)
	repo := &mocks.CheckpointRepo{}
	u := NewCheckpointUseCase(repo, time.Second)

	repo.On("GetCron", mock.Anything).Return(nil, domain.ErrNotFound)
	state, err := u.GetCron(bCtx.Background())
	req.NoError(err)
	req.False(state.IsRunning)
	req.Equal(domain.AuctionId(0), state.NextAuctionId)
}
