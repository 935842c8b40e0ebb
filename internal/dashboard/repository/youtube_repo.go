package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"youtube_stats_dashboard/internal/dashboard/domain"
	"youtube_stats_dashboard/pkg"
	errprocess "youtube_stats_dashboard/pkg/err"
	"youtube_stats_dashboard/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	searchFields  = "items(id(videoId),snippet(channelId))"
	channelFields = "items(id,statistics(subscriberCount))"
	videoFields   = "items(id,snippet(title,publishedAt),contentDetails(duration),statistics(viewCount,likeCount))"
)

// YouTubeRepo the three YouTube Data API calls of a dashboard pass
type YouTubeRepo interface {
	// SearchVideos one search.list page of video hits, in API order
	SearchVideos(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error)
	// ChannelStats one batched channels.list for the distinct channels of results
	ChannelStats(ctx context.Context, results []domain.SearchResult) ([]domain.ChannelStats, error)
	// VideoStats one batched videos.list for the videos of results
	VideoStats(ctx context.Context, results []domain.SearchResult) ([]domain.VideoStats, error)
}

// YouTubeOptions client setting
type YouTubeOptions struct {
	APIKey string
	// Endpoint overrides the API base URL (tests, proxies)
	Endpoint string
	// Timeout per API call, 0 relies on the caller's context only
	Timeout time.Duration
}

type youTubeRepo struct {
	service *youtube.Service
	timeout time.Duration
}

// NewYouTubeRepo create the API client authenticated with a developer key
func NewYouTubeRepo(ctx context.Context, opt YouTubeOptions) (YouTubeRepo, error) {
	opts := []option.ClientOption{option.WithAPIKey(opt.APIKey)}
	if opt.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(opt.Endpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &youTubeRepo{service: service, timeout: opt.Timeout}, nil
}

func (r *youTubeRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// SearchVideos search.list with type=video
func (r *youTubeRepo) SearchVideos(ctx context.Context, q domain.SearchQuery) ([]domain.SearchResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	resp, err := r.service.Search.List([]string{"snippet"}).
		Q(q.Query).
		Type("video").
		Order(string(q.Order)).
		MaxResults(q.MaxResults).
		Fields(searchFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errprocess.Wrap("youtube search.list failed", err,
			zap.String("query", q.Query), zap.String("order", string(q.Order)))
	}

	results := make([]domain.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil || item.Id.VideoId == "" {
			logger.Log.Debug("search hit without video id or channel, skipped")
			continue
		}
		results = append(results, domain.SearchResult{
			VideoID:   item.Id.VideoId,
			ChannelID: item.Snippet.ChannelId,
		})
	}

	logger.Log.Debug("search.list", zap.String("query", q.Query), zap.Int("hits", len(results)))
	return results, nil
}

// ChannelStats channels.list part=statistics for the distinct channel ids
// A hidden subscriber count is reported as 0; a deleted channel has no row
func (r *youTubeRepo) ChannelStats(ctx context.Context, results []domain.SearchResult) ([]domain.ChannelStats, error) {
	channelIDs := make([]string, 0, len(results))
	for _, res := range results {
		if res.ChannelID != "" {
			channelIDs = append(channelIDs, res.ChannelID)
		}
	}
	channelIDs = pkg.Unique(channelIDs)
	if len(channelIDs) == 0 {
		return []domain.ChannelStats{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	resp, err := r.service.Channels.List([]string{"statistics"}).
		Id(channelIDs...).
		Fields(channelFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errprocess.Wrap("youtube channels.list failed", err,
			zap.Int("channels", len(channelIDs)))
	}

	stats := make([]domain.ChannelStats, 0, len(resp.Items))
	for _, item := range resp.Items {
		c := domain.ChannelStats{ChannelID: item.Id}
		if item.Statistics != nil {
			c.SubscriberCount = item.Statistics.SubscriberCount
		}
		stats = append(stats, c)
	}

	logger.Log.Debug("channels.list", zap.Int("requested", len(channelIDs)), zap.Int("returned", len(stats)))
	return stats, nil
}

// VideoStats videos.list part=snippet,contentDetails,statistics
// A hidden like count is reported as 0
func (r *youTubeRepo) VideoStats(ctx context.Context, results []domain.SearchResult) ([]domain.VideoStats, error) {
	videoIDs := make([]string, 0, len(results))
	for _, res := range results {
		videoIDs = append(videoIDs, res.VideoID)
	}
	if len(videoIDs) == 0 {
		return []domain.VideoStats{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	resp, err := r.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoIDs...).
		Fields(videoFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errprocess.Wrap("youtube videos.list failed", err,
			zap.String("ids", strings.Join(videoIDs, ",")))
	}

	stats := make([]domain.VideoStats, 0, len(resp.Items))
	for _, item := range resp.Items {
		v := domain.VideoStats{VideoID: item.Id}

		if item.Snippet != nil {
			v.Title = item.Snippet.Title
			publishedAt, err := domain.ParsePublishedAt(item.Snippet.PublishedAt)
			if err != nil {
				return nil, errprocess.Wrap("youtube videos.list returned a bad publishedAt", err,
					zap.String("video_id", item.Id))
			}
			v.PublishedAt = publishedAt
		}
		if item.ContentDetails != nil {
			v.Duration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			v.ViewCount = item.Statistics.ViewCount
			v.LikeCount = item.Statistics.LikeCount
		}
		stats = append(stats, v)
	}

	logger.Log.Debug("videos.list", zap.Int("requested", len(videoIDs)), zap.Int("returned", len(stats)))
	return stats, nil
}
