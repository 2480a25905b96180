package model

import "time"

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
