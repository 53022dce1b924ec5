package model

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

type GetUserRequest struct {
	UserID string `json:"user_id"`
}

type GetUserResponse User

type SearchUsersRequest struct {
	Q string `json:"q"`
}

type SearchUsersResponse struct {
	Users []User `json:"users"`
}
