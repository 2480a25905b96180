package model

import "time"

type Comment struct {
	ID         string       `json:"id"`
	Content    string       `json:"content"`
	IsApproved bool         `json:"is_approved"`
	PostID     string       `json:"post_id"`
	UserID     string       `json:"user_id"`
	Author     *AuthorBrief `json:"author,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type CommentCreate struct {
	Content string `json:"content" binding:"required"`
}

type CommentListResponse struct {
	Total int64     `json:"total"`
	Items []Comment `json:"items"`
}
