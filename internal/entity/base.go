package entity

import (
	"context"
	"time"

	"github.com/rateshelf/backend/pkg/xcontext"
)

type Base struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Rating{},
		&Follow{},
		&Like{},
		&Notification{},
		&ContentStatus{},
		&PinnedItem{},
		&Challenge{},
		&AlbumTrack{},
	)
}
