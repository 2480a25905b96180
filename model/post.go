package model

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"

	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Post struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content,omitempty"`
	Abstract        string     `json:"abstract,omitempty"`
	Status          string     `json:"status"`
	Visibility      string     `json:"visibility"`
	ThumbnailURL    string     `json:"thumbnail_url,omitempty"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	CanonicalURL    string     `json:"canonical_url,omitempty"`
	PDFURL          string     `json:"pdf_url,omitempty"`
	Volume          string     `json:"volume,omitempty"`
	Issue           string     `json:"issue,omitempty"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	ViewCount       int64      `json:"view_count"`
	ReadingTime     int        `json:"reading_time,omitempty"`
	AuthorID        string     `json:"author_id"`
	CategoryID      string     `json:"category_id,omitempty"`
	TagIDs          []string   `json:"tag_ids,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

type PostCreate struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Abstract        string     `json:"abstract"`
	Status          string     `json:"status"`
	Visibility      string     `json:"visibility"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	CanonicalURL    string     `json:"canonical_url"`
	PDFURL          string     `json:"pdf_url"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	CategoryID      string     `json:"category_id"`
	TagIDs          []string   `json:"tag_ids"`
}

// PostUpdate carries only the fields present in the request body
type PostUpdate struct {
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Content         *string    `json:"content"`
	Abstract        *string    `json:"abstract"`
	Status          *string    `json:"status"`
	Visibility      *string    `json:"visibility"`
	ThumbnailURL    *string    `json:"thumbnail_url"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	CanonicalURL    *string    `json:"canonical_url"`
	PDFURL          *string    `json:"pdf_url"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	CategoryID      *string    `json:"category_id"`
	TagIDs          []string   `json:"tag_ids"`
}

type PostFilter struct {
	Skip         int    `json:"skip"`
	Limit        int    `json:"limit"`
	Status       string `json:"status,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
	TagSlug      string `json:"tag_slug,omitempty"`
	Search       string `json:"search,omitempty"`
}

// CacheParams returns the parameter set that identifies this listing in the cache
func (f PostFilter) CacheParams() map[string]any {
	return map[string]any{
		"skip":     f.Skip,
		"limit":    f.Limit,
		"status":   f.Status,
		"category": f.CategorySlug,
		"tag":      f.TagSlug,
		"search":   f.Search,
	}
}

type PostListItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Status      string       `json:"status"`
	ViewCount   int64        `json:"view_count"`
	ReadingTime int          `json:"reading_time,omitempty"`
	Category    *Category    `json:"category,omitempty"`
	Author      *AuthorBrief `json:"author,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type PostListResponse struct {
	Total int64          `json:"total"`
	Items []PostListItem `json:"items"`
}

type RelatedPost struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type PostDetail struct {
	Post
	Category     *Category     `json:"category,omitempty"`
	Tags         []Tag         `json:"tags"`
	Author       *AuthorBrief  `json:"author,omitempty"`
	RelatedPosts []RelatedPost `json:"related_posts"`
}
