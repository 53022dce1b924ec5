package model

type FeedItem struct {
	Rating Rating `json:"rating"`
	User   User   `json:"user"`
}

type GetFeedRequest struct {
	Cursor int `json:"cursor"`
}

type GetFeedResponse struct {
	Items      []FeedItem `json:"items"`
	NextCursor *int       `json:"next_cursor,omitempty"`
}
