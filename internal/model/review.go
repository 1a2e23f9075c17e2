package model

import (
	"time"
)

type Review struct {
	ReviewID     int64     `gorm:"column:review_id;primaryKey" json:"review_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Designer     string    `gorm:"size:100" json:"designer"`
	Owner        string    `gorm:"size:50;not null;index" json:"owner"`
	ReviewBody   string    `gorm:"type:text" json:"review_body"`
	ReviewImgURL string    `gorm:"column:review_img_url;size:500" json:"review_img_url"`
	Category     string    `gorm:"size:100;not null;index" json:"category"`
	Votes        int       `gorm:"not null;default:0" json:"votes"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`

	// Populated by the comment-count join at query time, never stored.
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
}

func (Review) TableName() string {
	return "reviews"
}
