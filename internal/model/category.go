package model

type Category struct {
	Slug        string `gorm:"primaryKey;size:100" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
}

func (Category) TableName() string {
	return "categories"
}
