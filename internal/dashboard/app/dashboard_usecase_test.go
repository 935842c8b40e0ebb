package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"youtube_stats_dashboard/internal/dashboard/domain"
	"youtube_stats_dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testDefaults = domain.SearchQuery{Query: "Python", MaxResults: 50, Order: domain.OrderViewCount}

func TestDashboardUseCase_GetData(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	q := domain.SearchQuery{Query: "python", MaxResults: 50, Order: domain.OrderViewCount}

	search := []domain.SearchResult{{VideoID: "v1", ChannelID: "c1"}, {VideoID: "v2", ChannelID: "c1"}}
	channels := []domain.ChannelStats{{ChannelID: "c1", SubscriberCount: 300}}
	videos := []domain.VideoStats{
		{VideoID: "v1", Title: "one", ViewCount: 100, LikeCount: 5, PublishedAt: domain.NewDate(2023, time.May, 1)},
		{VideoID: "v2", Title: "two", ViewCount: 10, LikeCount: 15, PublishedAt: domain.NewDate(2023, time.May, 2)},
	}

	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("SearchVideos", ctx, q).Return(search, nil)
	mockRepo.On("ChannelStats", ctx, search).Return(channels, nil)
	mockRepo.On("VideoStats", ctx, search).Return(videos, nil)

	uc := NewDashboardUseCase(mockRepo, nil, testDefaults)
	table, err := uc.GetData(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, domain.Columns(), table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, q, table.Query)
	assert.InDelta(t, 150.0, table.Max.LikeRate, 1e-9)
	assert.Equal(t, uint64(100), table.Max.ViewCount)
	mockRepo.AssertExpectations(t)
}

func TestDashboardUseCase_GetData_Defaults(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()

	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("SearchVideos", ctx, testDefaults).Return([]domain.SearchResult{}, nil)
	mockRepo.On("ChannelStats", ctx, []domain.SearchResult{}).Return([]domain.ChannelStats{}, nil)
	mockRepo.On("VideoStats", ctx, []domain.SearchResult{}).Return([]domain.VideoStats{}, nil)

	uc := NewDashboardUseCase(mockRepo, nil, testDefaults)
	table, err := uc.GetData(ctx, domain.SearchQuery{Query: "   "})

	require.NoError(t, err)
	assert.Empty(t, table.Rows)
	assert.NotNil(t, table.Rows)
	mockRepo.AssertExpectations(t)
}

func TestDashboardUseCase_GetData_InvalidQuery(t *testing.T) {
	logger.SetNewNop()
	mockRepo := new(MockYouTubeRepo)
	uc := NewDashboardUseCase(mockRepo, nil, testDefaults)

	_, err := uc.GetData(context.Background(), domain.SearchQuery{Query: "python", Order: "views"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = uc.GetData(context.Background(), domain.SearchQuery{Query: "python", MaxResults: 51})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	mockRepo.AssertNotCalled(t, "SearchVideos", mock.Anything, mock.Anything)
}

func TestDashboardUseCase_GetData_UpstreamErrorAbortsPass(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	boom := errors.New("channels.list: 403")
	search := []domain.SearchResult{{VideoID: "v1", ChannelID: "c1"}}

	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("SearchVideos", ctx, testDefaults).Return(search, nil)
	mockRepo.On("ChannelStats", ctx, search).Return(nil, boom)

	uc := NewDashboardUseCase(mockRepo, NewQueryCache(0, nil, 0), testDefaults)
	_, err := uc.GetData(ctx, testDefaults)

	assert.ErrorIs(t, err, boom)
	mockRepo.AssertNotCalled(t, "VideoStats", mock.Anything, mock.Anything)
}

func TestDashboardUseCase_GetData_Cached(t *testing.T) {
	logger.SetNewNop()
	ctx := context.Background()
	search := []domain.SearchResult{{VideoID: "v1", ChannelID: "c1"}}

	mockRepo := new(MockYouTubeRepo)
	mockRepo.On("SearchVideos", ctx, testDefaults).Return(search, nil)
	mockRepo.On("ChannelStats", ctx, search).Return([]domain.ChannelStats{{ChannelID: "c1"}}, nil)
	mockRepo.On("VideoStats", ctx, search).Return([]domain.VideoStats{{VideoID: "v1", ViewCount: 1}}, nil)

	uc := NewDashboardUseCase(mockRepo, NewQueryCache(0, nil, 0), testDefaults)
	first, err := uc.GetData(ctx, testDefaults)
	require.NoError(t, err)
	// same arguments after normalization
	second, err := uc.GetData(ctx, domain.SearchQuery{Query: " Python "})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockRepo.AssertNumberOfCalls(t, "SearchVideos", 1)
	mockRepo.AssertNumberOfCalls(t, "VideoStats", 1)
}

func TestDashboardUseCase_Playback(t *testing.T) {
	logger.SetNewNop()
	uc := NewDashboardUseCase(new(MockYouTubeRepo), nil, testDefaults)

	t.Run("empty id is a no-op", func(t *testing.T) {
		p, err := uc.Playback("")
		assert.NoError(t, err)
		assert.Nil(t, p)

		p, err = uc.Playback("  ")
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("valid id", func(t *testing.T) {
		p, err := uc.Playback("dQw4w9WgXcQ")
		require.NoError(t, err)
		assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", p.URL)
		assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", p.EmbedURL)
	})

	t.Run("malformed id", func(t *testing.T) {
		p, err := uc.Playback("<script>")
		assert.ErrorIs(t, err, domain.ErrInvalidVideoID)
		assert.Nil(t, p)
	})
}
