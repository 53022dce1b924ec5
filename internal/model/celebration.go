package model

type GetStreakCelebrationRequest struct{}

type GetStreakCelebrationResponse struct {
	Celebrate bool `json:"celebrate"`
	Milestone int  `json:"milestone,omitempty"`
}
