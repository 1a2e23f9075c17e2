package service

import (
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
	"github.com/ncgames/games_go_server/internal/model/dto"
	"github.com/ncgames/games_go_server/internal/pkg/apperr"
	"github.com/ncgames/games_go_server/internal/repository"
)

// Comment body length bounds in characters, enforced before insert.
const (
	minCommentBodyLen = 1
	maxCommentBodyLen = 400
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	reviewRepo  *repository.ReviewRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	reviewRepo *repository.ReviewRepository,
	userRepo *repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
	}
}

// ListByReviewID returns the comments of an existing review, most
// recent first. A review with no comments yields an empty list; a
// missing review is a not-found failure.
func (s *CommentService) ListByReviewID(reviewID int64) ([]*model.Comment, error) {
	exists, err := s.reviewRepo.Exists(reviewID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound()
	}

	return s.commentRepo.ListByReviewID(reviewID)
}

// Create inserts a comment on an existing review. A missing review is
// not-found; an unknown username is bad-request (the referential
// asymmetry of the contract). The body length bounds are checked
// before anything is written.
func (s *CommentService) Create(reviewID int64, req *dto.CreateCommentRequest) (*model.Comment, error) {
	reviewExists, err := s.reviewRepo.Exists(reviewID)
	if err != nil {
		return nil, err
	}
	if !reviewExists {
		return nil, apperr.NotFound()
	}

	userExists, err := s.userRepo.Exists(req.Username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperr.BadRequest()
	}

	if n := utf8.RuneCountInString(req.Body); n < minCommentBodyLen || n > maxCommentBodyLen {
		return nil, apperr.BadRequest()
	}

	comment := &model.Comment{
		Body:     req.Body,
		ReviewID: reviewID,
		Author:   req.Username,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// PatchVotes applies a signed delta and returns the updated comment.
func (s *CommentService) PatchVotes(id int64, delta int) (*model.Comment, error) {
	if _, err := s.commentRepo.IncrementVotes(id, delta); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment permanently. Deleting a missing id is a
// not-found failure, so a second delete of the same id fails.
func (s *CommentService) Delete(id int64) error {
	rows, err := s.commentRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound()
	}
	return nil
}
