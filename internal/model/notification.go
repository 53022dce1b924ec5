package model

import "time"

type Notification struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	ActorID        string    `json:"actor_id"`
	ActorUsername  string    `json:"actor_username"`
	ActorAvatarURL string    `json:"actor_avatar_url,omitempty"`
	RatingID       string    `json:"rating_id,omitempty"`
	RatingTitle    string    `json:"rating_title,omitempty"`
	RatingType     string    `json:"rating_type,omitempty"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type GetNotificationsRequest struct {
	Cursor int `json:"cursor"`
}

type GetNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	NextCursor    *int           `json:"next_cursor,omitempty"`
}

type GetUnreadCountRequest struct{}

type GetUnreadCountResponse struct {
	Count int64 `json:"count"`
}

type MarkNotificationsReadRequest struct {
	IDs []string `json:"ids"`
}

type MarkNotificationsReadResponse struct{}

type MarkAllNotificationsReadRequest struct{}

type MarkAllNotificationsReadResponse struct{}
