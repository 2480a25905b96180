package model

import "time"

type DashboardStats struct {
	TotalArticles     int64   `json:"total_articles"`
	PublishedArticles int64   `json:"published_articles"`
	DraftArticles     int64   `json:"draft_articles"`
	TotalViews        int64   `json:"total_views"`
	ViewsTrend        *string `json:"views_trend"`
}

type DashboardFilter struct {
	Skip     int    `json:"skip"`
	Limit    int    `json:"limit"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
	Sort     string `json:"sort,omitempty"`
}

func (f DashboardFilter) CacheParams() map[string]any {
	return map[string]any{
		"skip":     f.Skip,
		"limit":    f.Limit,
		"status":   f.Status,
		"category": f.Category,
		"sort":     f.Sort,
	}
}

type DashboardPostItem struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Slug      string       `json:"slug"`
	Status    string       `json:"status"`
	Category  *Category    `json:"category,omitempty"`
	Views     int64        `json:"views"`
	Author    *AuthorBrief `json:"author,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type DashboardPostListResponse struct {
	Total int64               `json:"total"`
	Items []DashboardPostItem `json:"items"`
}
