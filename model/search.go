package model

import "time"

const (
	SearchSortRelevance = "relevance"
	SearchSortDate      = "date"
	SearchFilterAll     = "all"
)

type SearchQuery struct {
	Q      string `json:"q"`
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
	Skip   int    `json:"skip"`
	Limit  int    `json:"limit"`
}

// CacheParams normalizes the query text so equivalent searches share a slot
func (q SearchQuery) CacheParams() map[string]any {
	return map[string]any{
		"q":      NormalizeSearchTerm(q.Q),
		"filter": q.Filter,
		"sort":   q.Sort,
		"skip":   q.Skip,
		"limit":  q.Limit,
	}
}

type SearchResultItem struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Slug           string       `json:"slug"`
	Excerpt        string       `json:"excerpt,omitempty"`
	Highlight      string       `json:"highlight,omitempty"`
	Category       *Category    `json:"category,omitempty"`
	Author         *AuthorBrief `json:"author,omitempty"`
	PublishedAt    *time.Time   `json:"published_at,omitempty"`
	RelevanceScore *float64     `json:"relevance_score"`
}

type SearchResponse struct {
	Total int64              `json:"total"`
	Items []SearchResultItem `json:"items"`
}

type HealthCheck struct {
	Status      string `json:"status"`
	DBStatus    string `json:"db_status"`
	RedisStatus string `json:"redis_status"`
}
