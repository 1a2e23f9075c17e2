package service

import (
	"github.com/ncgames/games_go_server/internal/model"
	"github.com/ncgames/games_go_server/internal/repository"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// List returns all categories. Never fails by business rule.
func (s *CategoryService) List() ([]*model.Category, error) {
	return s.categoryRepo.List()
}
