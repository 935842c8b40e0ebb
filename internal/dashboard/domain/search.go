package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidQuery search parameters rejected before any API call
	ErrInvalidQuery = errors.New("invalid search query")
	// ErrInvalidVideoID playback id is not a well-formed video id
	ErrInvalidVideoID = errors.New("invalid video id")
)

// SearchOrder ordering key accepted by the search endpoint
type SearchOrder string

const (
	//OrderViewCount most viewed first
	OrderViewCount SearchOrder = "viewCount"
	//OrderDate newest upload first
	OrderDate SearchOrder = "date"
	//OrderRating highest rated first
	OrderRating SearchOrder = "rating"
	//OrderRelevance search relevance
	OrderRelevance SearchOrder = "relevance"
)

// MaxResultsLimit upper bound of maxResults for one search page
const MaxResultsLimit = 50

var searchOrders = []SearchOrder{OrderViewCount, OrderDate, OrderRating, OrderRelevance}

var orderLabels = map[SearchOrder]string{
	OrderViewCount: "View count",
	OrderDate:      "Upload date",
	OrderRating:    "Rating",
	OrderRelevance: "Relevance",
}

// SearchOrders the four orderings in display order
func SearchOrders() []SearchOrder {
	out := make([]SearchOrder, len(searchOrders))
	copy(out, searchOrders)
	return out
}

// Label display label of the ordering, distinct from its wire value
func (o SearchOrder) Label() string {
	return orderLabels[o]
}

// IsValid reports whether o is one of the four orderings
func (o SearchOrder) IsValid() bool {
	_, ok := orderLabels[o]
	return ok
}

// ParseSearchOrder parse a wire value, empty falls back to def
func ParseSearchOrder(s string, def SearchOrder) (SearchOrder, error) {
	if s == "" {
		return def, nil
	}
	o := SearchOrder(s)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: unknown order %q", ErrInvalidQuery, s)
	}
	return o, nil
}

// SearchQuery parameters of one dashboard pass
type SearchQuery struct {
	Query      string      `json:"query"`
	MaxResults int64       `json:"max_results"`
	Order      SearchOrder `json:"order"`
}

// Normalize trims the query text
func (q SearchQuery) Normalize() SearchQuery {
	q.Query = strings.TrimSpace(q.Query)
	return q
}

// Validate checks the query before it is sent upstream
func (q SearchQuery) Validate() error {
	if strings.TrimSpace(q.Query) == "" {
		return fmt.Errorf("%w: query is required", ErrInvalidQuery)
	}
	if q.MaxResults < 1 || q.MaxResults > MaxResultsLimit {
		return fmt.Errorf("%w: max results must be between 1 and %d", ErrInvalidQuery, MaxResultsLimit)
	}
	if !q.Order.IsValid() {
		return fmt.Errorf("%w: unknown order %q", ErrInvalidQuery, q.Order)
	}
	return nil
}
