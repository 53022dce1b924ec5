package model

import "time"

type ContentStatus struct {
	ContentType     string    `json:"content_type"`
	ContentID       string    `json:"content_id"`
	Status          string    `json:"status"`
	ContentTitle    string    `json:"content_title"`
	ContentImageURL string    `json:"content_image_url,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpsertContentStatusRequest struct {
	ContentType     string `json:"content_type"`
	ContentID       string `json:"content_id"`
	Status          string `json:"status"`
	ContentTitle    string `json:"content_title"`
	ContentImageURL string `json:"content_image_url"`
}

type UpsertContentStatusResponse struct{}

type GetPendingItemsRequest struct{}

type GetPendingItemsResponse struct {
	Items []ContentStatus `json:"items"`
}
