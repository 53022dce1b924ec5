package model

type FollowRequest struct {
	UserID string `json:"user_id"`
}

type FollowResponse struct{}

type UnfollowRequest struct {
	UserID string `json:"user_id"`
}

type UnfollowResponse struct{}

type GetFollowersRequest struct {
	UserID string `json:"user_id"`
}

type GetFollowersResponse struct {
	Followers []User `json:"followers"`
	Total     int64  `json:"total"`
}

type GetFollowingRequest struct {
	UserID string `json:"user_id"`
}

type GetFollowingResponse struct {
	Following []User `json:"following"`
	Total     int64  `json:"total"`
}

type IsFollowingRequest struct {
	UserID string `json:"user_id"`
}

type IsFollowingResponse struct {
	Following bool `json:"following"`
}
