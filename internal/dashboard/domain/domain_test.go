package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"youtube_stats_dashboard/internal/dashboard/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRate(t *testing.T) {
	tests := []struct {
		name  string
		likes uint64
		views uint64
		want  float64
	}{
		{"no views", 5, 0, 0},
		{"no views no likes", 0, 0, 0},
		{"quarter", 25, 100, 25},
		{"no likes", 0, 1000, 0},
		{"more likes than views is not clamped", 15, 10, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, domain.LikeRate(tt.likes, tt.views), 1e-9)
		})
	}
}

func TestParsePublishedAt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Date
	}{
		{"crosses midnight in UTC+9", "2021-01-01T15:30:00Z", domain.NewDate(2021, time.January, 2)},
		{"same day", "2021-01-01T14:59:59Z", domain.NewDate(2021, time.January, 1)},
		{"year boundary", "2020-12-31T23:00:00Z", domain.NewDate(2021, time.January, 1)},
		{"offset input", "2021-06-30T20:00:00-05:00", domain.NewDate(2021, time.July, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePublishedAt(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := domain.ParsePublishedAt("yesterday")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d := domain.NewDate(2021, time.January, 2)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2021-01-02"`, string(b))

	var back domain.Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)

	assert.Error(t, json.Unmarshal([]byte(`"02/01/2021"`), &back))
	assert.True(t, domain.Date{}.IsZero())
}

func TestDateJSON_Zero(t *testing.T) {
	b, err := json.Marshal(domain.Date{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(b))

	back := domain.NewDate(2021, time.January, 2)
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.IsZero())

	back = domain.NewDate(2021, time.January, 2)
	require.NoError(t, json.Unmarshal([]byte(`""`), &back))
	assert.True(t, back.IsZero())

	// a row without a publish date still survives a table round trip
	table := domain.NewResultTable(domain.SearchQuery{Query: "go", MaxResults: 5, Order: domain.OrderDate},
		[]domain.ResultRow{{VideoID: "v1", Title: "no snippet", ViewCount: 3}})
	raw, err := json.Marshal(table)
	require.NoError(t, err)

	var decoded domain.ResultTable
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, table, decoded)
	assert.Equal(t, "", decoded.Rows[0].PublishedAt.String())
}

func TestSearchOrder(t *testing.T) {
	assert.Equal(t, []domain.SearchOrder{
		domain.OrderViewCount, domain.OrderDate, domain.OrderRating, domain.OrderRelevance,
	}, domain.SearchOrders())

	for _, o := range domain.SearchOrders() {
		assert.True(t, o.IsValid())
		assert.NotEmpty(t, o.Label())
		assert.NotEqual(t, string(o), o.Label(), "label must differ from wire value")
	}

	o, err := domain.ParseSearchOrder("", domain.OrderViewCount)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderViewCount, o)

	o, err = domain.ParseSearchOrder("rating", domain.OrderViewCount)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderRating, o)

	_, err = domain.ParseSearchOrder("popularity", domain.OrderViewCount)
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestSearchQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   domain.SearchQuery
		wantErr bool
	}{
		{"valid", domain.SearchQuery{Query: "python", MaxResults: 50, Order: domain.OrderViewCount}, false},
		{"empty query", domain.SearchQuery{Query: "  ", MaxResults: 50, Order: domain.OrderViewCount}, true},
		{"zero results", domain.SearchQuery{Query: "go", MaxResults: 0, Order: domain.OrderDate}, true},
		{"too many results", domain.SearchQuery{Query: "go", MaxResults: 51, Order: domain.OrderDate}, true},
		{"bad order", domain.SearchQuery{Query: "go", MaxResults: 10, Order: "likes"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewResultTable(t *testing.T) {
	rows := []domain.ResultRow{
		{VideoID: "a", LikeRate: 2.5, ViewCount: 100, SubscriberCount: 10},
		{VideoID: "b", LikeRate: 150, ViewCount: 10, SubscriberCount: 900},
		{VideoID: "c", LikeRate: 1, ViewCount: 5000, SubscriberCount: 900},
	}
	table := domain.NewResultTable(domain.SearchQuery{Query: "go"}, rows)

	assert.Equal(t, []string{"video_id", "title", "like_rate", "view_count", "subscriber_count", "published_at"}, table.Columns)
	assert.Equal(t, domain.ColumnMax{LikeRate: 150, ViewCount: 5000, SubscriberCount: 900}, table.Max)

	assert.True(t, table.Highlight(domain.ColumnLikeRate, rows[1]))
	assert.False(t, table.Highlight(domain.ColumnLikeRate, rows[0]))
	assert.True(t, table.Highlight(domain.ColumnViewCount, rows[2]))
	// ties are all highlighted
	assert.True(t, table.Highlight(domain.ColumnSubscriberCount, rows[1]))
	assert.True(t, table.Highlight(domain.ColumnSubscriberCount, rows[2]))
	assert.False(t, table.Highlight(domain.ColumnTitle, rows[0]))

	empty := domain.NewResultTable(domain.SearchQuery{}, nil)
	assert.NotNil(t, empty.Rows)
	assert.False(t, empty.Highlight(domain.ColumnLikeRate, domain.ResultRow{}))
}

func TestResultRowRecord(t *testing.T) {
	r := domain.ResultRow{
		VideoID:         "dQw4w9WgXcQ",
		Title:           "Never",
		LikeRate:        12.5,
		ViewCount:       80,
		SubscriberCount: 3,
		PublishedAt:     domain.NewDate(2021, time.January, 2),
	}
	assert.Equal(t, []string{"dQw4w9WgXcQ", "Never", "12.5", "80", "3", "2021-01-02"}, r.Record())
}

func TestNewPlayback(t *testing.T) {
	p, err := domain.NewPlayback("  dQw4w9WgXcQ ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", p.VideoID)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", p.URL)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", p.EmbedURL)

	for _, bad := range []string{"", "abc def", "12345678901234567", "<script>"} {
		_, err := domain.NewPlayback(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidVideoID, bad)
	}
}
