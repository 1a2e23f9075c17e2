package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
	"github.com/ncgames/games_go_server/internal/model/dto"
	"github.com/ncgames/games_go_server/internal/pkg/apperr"
	"github.com/ncgames/games_go_server/internal/repository"
)

const (
	defaultSortBy = "created_at"
	defaultOrder  = "desc"

	defaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg?w=700&h=700"
)

// reviewSortColumns is the allow-list of sortable review columns.
var reviewSortColumns = map[string]struct{}{
	"title":          {},
	"designer":       {},
	"owner":          {},
	"review_img_url": {},
	"review_body":    {},
	"category":       {},
	"created_at":     {},
	"votes":          {},
}

type ReviewService struct {
	reviewRepo   *repository.ReviewRepository
	categoryRepo *repository.CategoryRepository
	userRepo     *repository.UserRepository
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	categoryRepo *repository.CategoryRepository,
	userRepo *repository.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:   reviewRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// GetByID returns a single review with its comment count.
func (s *ReviewService) GetByID(id int64) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound()
		}
		return nil, err
	}
	return review, nil
}

// List applies defaults and allow-lists to the query, then returns the
// matching reviews. An unknown category is a not-found failure; a known
// category with no reviews yields an empty list.
func (s *ReviewService) List(q *dto.ListReviewsQuery) ([]*model.Review, error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	if _, ok := reviewSortColumns[sortBy]; !ok {
		return nil, apperr.Validation("invalid sort_by query")
	}

	order := q.Order
	if order == "" {
		order = defaultOrder
	}
	if order != "asc" && order != "desc" {
		return nil, apperr.Validation("invalid order query")
	}

	if q.Category != "" {
		known, err := s.categoryKnown(q.Category)
		if err != nil {
			return nil, err
		}
		if !known {
			return nil, apperr.NotFound()
		}
	}

	return s.reviewRepo.List(sortBy, order, q.Category)
}

// categoryKnown checks the union of category slugs and categories
// already carried by reviews.
func (s *ReviewService) categoryKnown(slug string) (bool, error) {
	known, err := s.categoryRepo.SlugExists(slug)
	if err != nil || known {
		return known, err
	}
	return s.reviewRepo.CategoryInUse(slug)
}

// Create inserts a review after verifying owner and category exist.
// A missing reference is a not-found failure, matching the status a
// foreign-key violation would translate to.
func (s *ReviewService) Create(req *dto.CreateReviewRequest) (*model.Review, error) {
	ownerExists, err := s.userRepo.Exists(req.Owner)
	if err != nil {
		return nil, err
	}
	if !ownerExists {
		return nil, apperr.NotFound()
	}

	categoryExists, err := s.categoryRepo.SlugExists(req.Category)
	if err != nil {
		return nil, err
	}
	if !categoryExists {
		return nil, apperr.NotFound()
	}

	review := &model.Review{
		Title:        req.Title,
		Designer:     req.Designer,
		Owner:        req.Owner,
		ReviewBody:   req.ReviewBody,
		ReviewImgURL: req.ReviewImgURL,
		Category:     req.Category,
	}
	if review.ReviewImgURL == "" {
		review.ReviewImgURL = defaultReviewImgURL
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	// re-fetch for the joined comment_count
	return s.GetByID(review.ReviewID)
}

// PatchVotes applies a signed delta and returns the updated review.
func (s *ReviewService) PatchVotes(id int64, delta int) (*model.Review, error) {
	if _, err := s.reviewRepo.IncrementVotes(id, delta); err != nil {
		return nil, err
	}
	// the fetch doubles as the existence check; a zero-row update on a
	// present review (delta 0) is still a success
	return s.GetByID(id)
}
