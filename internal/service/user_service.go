package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
	"github.com/ncgames/games_go_server/internal/pkg/apperr"
	"github.com/ncgames/games_go_server/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List() ([]*model.User, error) {
	return s.userRepo.List()
}

func (s *UserService) GetByUsername(username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, err
	}
	return user, nil
}
