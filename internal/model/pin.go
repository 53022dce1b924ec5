package model

type PinnedItem struct {
	ContentType     string `json:"content_type"`
	ContentID       string `json:"content_id"`
	Position        int    `json:"position"`
	ContentTitle    string `json:"content_title"`
	ContentImageURL string `json:"content_image_url,omitempty"`
}

type GetPinnedItemsRequest struct {
	UserID string `json:"user_id"`
}

type GetPinnedItemsResponse struct {
	Items []PinnedItem `json:"items"`
}

type PinItemRequest struct {
	ContentType     string `json:"content_type"`
	ContentID       string `json:"content_id"`
	ContentTitle    string `json:"content_title"`
	ContentImageURL string `json:"content_image_url"`
}

type PinItemResponse struct{}

type UnpinItemRequest struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
}

type UnpinItemResponse struct{}

type PinRef struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
}

// ReorderPinsRequest lists the pins in their new order; positions are
// assigned from the slice index.
type ReorderPinsRequest struct {
	Items []PinRef `json:"items"`
}

type ReorderPinsResponse struct{}
