package model

import (
	"time"
)

type Comment struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ReviewID  int64     `gorm:"column:review_id;not null;index" json:"review_id"`
	Author    string    `gorm:"size:50;not null" json:"author"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
