package domain

import (
	"strconv"
)

// Column names of the result table, in display order
const (
	ColumnVideoID         = "video_id"
	ColumnTitle           = "title"
	ColumnLikeRate        = "like_rate"
	ColumnViewCount       = "view_count"
	ColumnSubscriberCount = "subscriber_count"
	ColumnPublishedAt     = "published_at"
)

// Columns final projection of the result table
func Columns() []string {
	return []string{
		ColumnVideoID,
		ColumnTitle,
		ColumnLikeRate,
		ColumnViewCount,
		ColumnSubscriberCount,
		ColumnPublishedAt,
	}
}

// SearchResult one search hit
type SearchResult struct {
	VideoID   string `json:"video_id"`
	ChannelID string `json:"channel_id"`
}

// ChannelStats channel statistics, hidden subscriber counts are 0
type ChannelStats struct {
	ChannelID       string `json:"channel_id"`
	SubscriberCount uint64 `json:"subscriber_count"`
}

// VideoStats video details, a hidden like count is 0
type VideoStats struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	PublishedAt Date   `json:"published_at"`
	Duration    string `json:"duration"`
	ViewCount   uint64 `json:"view_count"`
	LikeCount   uint64 `json:"like_count"`
}

// ResultRow one row of the final table
type ResultRow struct {
	VideoID         string  `json:"video_id"`
	Title           string  `json:"title"`
	LikeRate        float64 `json:"like_rate"`
	ViewCount       uint64  `json:"view_count"`
	SubscriberCount uint64  `json:"subscriber_count"`
	PublishedAt     Date    `json:"published_at"`
}

// Record row values as strings in Columns order
func (r ResultRow) Record() []string {
	return []string{
		r.VideoID,
		r.Title,
		strconv.FormatFloat(r.LikeRate, 'f', -1, 64),
		strconv.FormatUint(r.ViewCount, 10),
		strconv.FormatUint(r.SubscriberCount, 10),
		r.PublishedAt.String(),
	}
}

// LikeRate like_count / view_count as a percentage, 0 when there are no views
// There is no upper bound: more likes than views yields more than 100
func LikeRate(likeCount, viewCount uint64) float64 {
	if viewCount == 0 {
		return 0
	}
	return float64(likeCount) / float64(viewCount) * 100
}

// ColumnMax column maxima used for highlighting
type ColumnMax struct {
	LikeRate        float64 `json:"like_rate"`
	ViewCount       uint64  `json:"view_count"`
	SubscriberCount uint64  `json:"subscriber_count"`
}

// ResultTable rows of one dashboard pass
type ResultTable struct {
	Query   SearchQuery `json:"query"`
	Columns []string    `json:"columns"`
	Rows    []ResultRow `json:"rows"`
	Max     ColumnMax   `json:"max"`
}

// NewResultTable wrap rows with the column list and their maxima
func NewResultTable(q SearchQuery, rows []ResultRow) ResultTable {
	if rows == nil {
		rows = []ResultRow{}
	}
	t := ResultTable{
		Query:   q,
		Columns: Columns(),
		Rows:    rows,
	}
	for _, r := range rows {
		if r.LikeRate > t.Max.LikeRate {
			t.Max.LikeRate = r.LikeRate
		}
		if r.ViewCount > t.Max.ViewCount {
			t.Max.ViewCount = r.ViewCount
		}
		if r.SubscriberCount > t.Max.SubscriberCount {
			t.Max.SubscriberCount = r.SubscriberCount
		}
	}
	return t
}

// Highlight reports whether the row holds the maximum of column
// Only like_rate, view_count and subscriber_count are highlighted
func (t ResultTable) Highlight(column string, r ResultRow) bool {
	if len(t.Rows) == 0 {
		return false
	}
	switch column {
	case ColumnLikeRate:
		return r.LikeRate == t.Max.LikeRate
	case ColumnViewCount:
		return r.ViewCount == t.Max.ViewCount
	case ColumnSubscriberCount:
		return r.SubscriberCount == t.Max.SubscriberCount
	}
	return false
}
