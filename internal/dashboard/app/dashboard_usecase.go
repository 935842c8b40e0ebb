package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"youtube_stats_dashboard/internal/dashboard/domain"
	"youtube_stats_dashboard/internal/dashboard/repository"
	"youtube_stats_dashboard/pkg/logger"

	"go.uber.org/zap"
)

// DashboardUseCase application service behind the dashboard pages
type DashboardUseCase interface {
	// GetData search, enrich, join and derive for one query
	GetData(ctx context.Context, q domain.SearchQuery) (domain.ResultTable, error)
	// Playback playback URLs for a video id; an empty id is a no-op and returns nil, nil
	Playback(videoID string) (*domain.Playback, error)
	// Defaults parameters used when the request leaves them out
	Defaults() domain.SearchQuery
}

type dashboardUseCase struct {
	repo     repository.YouTubeRepo
	cache    *QueryCache
	defaults domain.SearchQuery
}

// NewDashboardUseCase cache may be nil, every call then reaches the API
func NewDashboardUseCase(repo repository.YouTubeRepo, cache *QueryCache, defaults domain.SearchQuery) DashboardUseCase {
	return &dashboardUseCase{
		repo:     repo,
		cache:    cache,
		defaults: defaults,
	}
}

func (d *dashboardUseCase) Defaults() domain.SearchQuery {
	return d.defaults
}

// GetData
func (d *dashboardUseCase) GetData(ctx context.Context, q domain.SearchQuery) (domain.ResultTable, error) {
	q = d.withDefaults(q)
	if err := q.Validate(); err != nil {
		return domain.ResultTable{}, err
	}

	if d.cache == nil {
		return d.fetch(ctx, q)
	}
	key := CacheKey("get_data", q.Query, strconv.FormatInt(q.MaxResults, 10), string(q.Order))
	return d.cache.Do(ctx, key, func(ctx context.Context) (domain.ResultTable, error) {
		return d.fetch(ctx, q)
	})
}

func (d *dashboardUseCase) withDefaults(q domain.SearchQuery) domain.SearchQuery {
	q = q.Normalize()
	if q.Query == "" {
		q.Query = d.defaults.Query
	}
	if q.MaxResults == 0 {
		q.MaxResults = d.defaults.MaxResults
	}
	if q.Order == "" {
		q.Order = d.defaults.Order
	}
	return q
}

// fetch one uncached pass, the three calls run in sequence and any failure aborts it
func (d *dashboardUseCase) fetch(ctx context.Context, q domain.SearchQuery) (domain.ResultTable, error) {
	start := time.Now()

	search, err := d.repo.SearchVideos(ctx, q)
	if err != nil {
		return domain.ResultTable{}, err
	}
	channels, err := d.repo.ChannelStats(ctx, search)
	if err != nil {
		return domain.ResultTable{}, err
	}
	videos, err := d.repo.VideoStats(ctx, search)
	if err != nil {
		return domain.ResultTable{}, err
	}

	rows := Aggregate(search, channels, videos)
	logger.Log.Info("dashboard data fetched",
		zap.String("query", q.Query),
		zap.String("order", string(q.Order)),
		zap.Int("hits", len(search)),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return domain.NewResultTable(q, rows), nil
}

// Playback
func (d *dashboardUseCase) Playback(videoID string) (*domain.Playback, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, nil
	}
	p, err := domain.NewPlayback(videoID)
	if err != nil {
		logger.Log.Warn("cannot display video", zap.String("video_id", videoID), zap.Error(err))
		return nil, err
	}
	return p, nil
}
