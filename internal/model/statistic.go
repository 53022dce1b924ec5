package model

type GetStreakRequest struct{}

type GetStreakResponse struct {
	Days int `json:"days"`
}

type GetDiaryRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type GetDiaryResponse struct {
	// Days maps a local YYYY-MM-DD date to that day's ratings, oldest
	// first.
	Days map[string][]Rating `json:"days"`
}

type CategoryStat struct {
	ContentType  string  `json:"content_type"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"average_score"`
}

type GetCategoryStatsRequest struct {
	UserID string `json:"user_id"`
}

type GetCategoryStatsResponse struct {
	TotalRatings int            `json:"total_ratings"`
	AverageScore float64        `json:"average_score"`
	ByCategory   []CategoryStat `json:"by_category"`
}
