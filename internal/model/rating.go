package model

import "time"

type Rating struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ContentType     string    `json:"content_type"`
	ContentID       string    `json:"content_id"`
	ContentTitle    string    `json:"content_title"`
	ContentImageURL string    `json:"content_image_url,omitempty"`
	Score           float64   `json:"score"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateRatingRequest struct {
	ContentType     string  `json:"content_type"`
	ContentID       string  `json:"content_id"`
	ContentTitle    string  `json:"content_title"`
	ContentImageURL string  `json:"content_image_url"`
	Score           float64 `json:"score"`
}

type CreateRatingResponse struct {
	ID string `json:"id"`
}

type GetRatingHistoryRequest struct {
	UserID string `json:"user_id"`
	Cursor int    `json:"cursor"`
}

type GetRatingHistoryResponse struct {
	Ratings []Rating `json:"ratings"`
	// NextCursor is absent once the last page was served.
	NextCursor *int `json:"next_cursor,omitempty"`
}

type CommunityScore struct {
	AverageScore float64 `json:"average_score"`
	TotalRatings int     `json:"total_ratings"`
}

type GetCommunityScoreRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
}

type GetCommunityScoreResponse CommunityScore

type LikeRatingRequest struct {
	RatingID string `json:"rating_id"`
}

type LikeRatingResponse struct{}

type UnlikeRatingRequest struct {
	RatingID string `json:"rating_id"`
}

type UnlikeRatingResponse struct{}

type GetRatingLikeRequest struct {
	RatingID string `json:"rating_id"`
}

type GetRatingLikeResponse struct {
	Liked bool `json:"liked"`
}

type GetLikesCountRequest struct {
	RatingID string `json:"rating_id"`
}

type GetLikesCountResponse struct {
	Count int64 `json:"count"`
}
