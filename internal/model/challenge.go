package model

import "time"

type ChallengeProgress struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ContentType string    `json:"content_type"`
	TargetCount int       `json:"target_count"`
	Progress    int64     `json:"progress"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
}

type GetActiveChallengesRequest struct{}

type GetActiveChallengesResponse struct {
	Challenges []ChallengeProgress `json:"challenges"`
}
