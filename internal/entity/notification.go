package entity

import "github.com/rateshelf/backend/pkg/enum"

type NotificationType string

var (
	NotificationFollow = enum.New(NotificationType("follow"))
	NotificationLike   = enum.New(NotificationType("like"))
)

// Notification is append-only except for the unread -> read transition.
// The actor fields are denormalized at insert time; RatingID, RatingTitle
// and RatingType are filled only for like notifications.
type Notification struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Type NotificationType

	ActorID        string
	ActorUsername  string
	ActorAvatarURL string

	RatingID    string
	RatingTitle string
	RatingType  ContentType

	IsRead bool
}
