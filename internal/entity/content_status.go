package entity

import (
	"time"

	"github.com/rateshelf/backend/pkg/enum"
)

type StatusType string

var (
	StatusWant  = enum.New(StatusType("want"))
	StatusDoing = enum.New(StatusType("doing"))
)

// ContentStatus is unique per (user, content type, content id) and is only
// ever upserted, last write wins. "Done" is implicit through a rating row.
type ContentStatus struct {
	UserID      string      `gorm:"primaryKey"`
	ContentType ContentType `gorm:"primaryKey"`
	ContentID   string      `gorm:"primaryKey"`

	Status          StatusType
	ContentTitle    string
	ContentImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
