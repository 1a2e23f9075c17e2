package repository

import (
	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories in insertion order (database default,
// the table is seeded append-only).
func (r *CategoryRepository) List() ([]*model.Category, error) {
	categories := []*model.Category{}
	err := r.db.Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// SlugExists reports whether a category with the given slug exists.
func (r *CategoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
