package entity

type AlbumTrack struct {
	ID      string `gorm:"primaryKey"`
	AlbumID string `gorm:"index"`

	Position    int
	Title       string
	DurationSec int
}
