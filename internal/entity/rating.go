package entity

import "github.com/rateshelf/backend/pkg/enum"

type ContentType string

var (
	ContentMovie   = enum.New(ContentType("movie"))
	ContentSeries  = enum.New(ContentType("series"))
	ContentBook    = enum.New(ContentType("book"))
	ContentGame    = enum.New(ContentType("game"))
	ContentMusic   = enum.New(ContentType("music"))
	ContentPodcast = enum.New(ContentType("podcast"))
	ContentCustom  = enum.New(ContentType("custom"))
)

// Rating rows are immutable: re-rating the same content creates a new row,
// so a diary day can legitimately show the same title twice.
type Rating struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	ContentType     ContentType `gorm:"index:idx_ratings_content"`
	ContentID       string      `gorm:"index:idx_ratings_content"`
	ContentTitle    string
	ContentImageURL string

	// Score is in [1, 10] at one-decimal precision.
	Score float64
}
