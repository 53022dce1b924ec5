package model

type AlbumTrack struct {
	Position    int    `json:"position"`
	Title       string `json:"title"`
	DurationSec int    `json:"duration_sec"`
}

type GetAlbumTracksRequest struct {
	AlbumID string `json:"album_id"`
}

type GetAlbumTracksResponse struct {
	Tracks []AlbumTrack `json:"tracks"`
}
