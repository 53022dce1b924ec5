package entity

import "time"

type Like struct {
	CreatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	RatingID string `gorm:"primaryKey"`
	Rating   Rating `gorm:"foreignKey:RatingID"`
}
