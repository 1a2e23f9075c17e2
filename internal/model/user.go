package model

type User struct {
	Username  string `gorm:"primaryKey;size:50" json:"username"`
	Name      string `gorm:"size:100" json:"name"`
	AvatarURL string `gorm:"size:500" json:"avatar_url"`
}

func (User) TableName() string {
	return "users"
}
