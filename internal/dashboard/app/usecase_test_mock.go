package app

import (
	"context"
	"time"

	"youtube_stats_dashboard/internal/dashboard/domain"

	"github.com/stretchr/testify/mock"
)

// MockYouTubeRepo Mock YouTubeRepo
type MockYouTubeRepo struct {
	mock.Mock
}

// SearchVideos mock search.list
func (m *MockYouTubeRepo) SearchVideos(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.SearchResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// ChannelStats mock channels.list
func (m *MockYouTubeRepo) ChannelStats(ctx context.Context, results []domain.SearchResult) ([]domain.ChannelStats, error) {
	args := m.Called(ctx, results)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.ChannelStats), args.Error(1)
	}
	return nil, args.Error(1)
}

// VideoStats mock videos.list
func (m *MockYouTubeRepo) VideoStats(ctx context.Context, results []domain.SearchResult) ([]domain.VideoStats, error) {
	args := m.Called(ctx, results)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.VideoStats), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRedisRepository Mock database.RedisRepository[domain.ResultTable]
type MockRedisRepository struct {
	mock.Mock
}

// Set mock set
func (m *MockRedisRepository) Set(ctx context.Context, key string, value domain.ResultTable, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Get mock get
func (m *MockRedisRepository) Get(ctx context.Context, key string) (domain.ResultTable, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(domain.ResultTable), args.Error(1)
}

// Del mock del
func (m *MockRedisRepository) Del(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// GetTTL mock get ttl
func (m *MockRedisRepository) GetTTL(ctx context.Context, key string) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

// ExtendTTL mock extend ttl
func (m *MockRedisRepository) ExtendTTL(ctx context.Context, key string, ttl time.Duration) error {
	args := m.Called(ctx, key, ttl)
	return args.Error(0)
}

// Close mock close
func (m *MockRedisRepository) Close() error {
	return m.Called().Error(0)
}

// MockDashboardUseCase Mock DashboardUseCase
type MockDashboardUseCase struct {
	mock.Mock
}

// GetData mock get data
func (m *MockDashboardUseCase) GetData(ctx context.Context, q domain.SearchQuery) (domain.ResultTable, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.ResultTable), args.Error(1)
}

// Playback mock playback
func (m *MockDashboardUseCase) Playback(videoID string) (*domain.Playback, error) {
	args := m.Called(videoID)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Playback), args.Error(1)
	}
	return nil, args.Error(1)
}

// Defaults mock defaults
func (m *MockDashboardUseCase) Defaults() domain.SearchQuery {
	return m.Called().Get(0).(domain.SearchQuery)
}
