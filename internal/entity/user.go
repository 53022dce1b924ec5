package entity

type User struct {
	Base
	Username  string `gorm:"unique"`
	AvatarURL string
	Bio       string
}
