package entity

import "time"

// PinnedItem is one slot of a user's profile showcase, ordered by Position.
type PinnedItem struct {
	UserID      string      `gorm:"primaryKey"`
	ContentType ContentType `gorm:"primaryKey"`
	ContentID   string      `gorm:"primaryKey"`

	Position        int
	ContentTitle    string
	ContentImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
