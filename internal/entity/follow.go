package entity

import "time"

// Follow is the directed edge follower -> followee, unique per ordered
// pair through the composite primary key.
type Follow struct {
	CreatedAt time.Time

	FollowerID string `gorm:"primaryKey"`
	Follower   User   `gorm:"foreignKey:FollowerID"`

	FolloweeID string `gorm:"primaryKey"`
	Followee   User   `gorm:"foreignKey:FolloweeID"`
}
