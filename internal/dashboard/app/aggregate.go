package app

import "youtube_stats_dashboard/internal/dashboard/domain"

// Aggregate inner joins search hits with channel and video statistics and
// derives like_rate. Hits without a channel row or a video row are dropped;
// the surviving rows keep the search order.
func Aggregate(search []domain.SearchResult, channels []domain.ChannelStats, videos []domain.VideoStats) []domain.ResultRow {
	subscribers := make(map[string]uint64, len(channels))
	for _, c := range channels {
		subscribers[c.ChannelID] = c.SubscriberCount
	}
	byVideo := make(map[string]domain.VideoStats, len(videos))
	for _, v := range videos {
		byVideo[v.VideoID] = v
	}

	rows := make([]domain.ResultRow, 0, len(search))
	for _, s := range search {
		subscriberCount, ok := subscribers[s.ChannelID]
		if !ok {
			continue
		}
		v, ok := byVideo[s.VideoID]
		if !ok {
			continue
		}
		rows = append(rows, domain.ResultRow{
			VideoID:         s.VideoID,
			Title:           v.Title,
			LikeRate:        domain.LikeRate(v.LikeCount, v.ViewCount),
			ViewCount:       v.ViewCount,
			SubscriberCount: subscriberCount,
			PublishedAt:     v.PublishedAt,
		})
	}
	return rows
}
