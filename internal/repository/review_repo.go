package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
)

// commentCountSelect joins the aggregated comment count onto each
// review row; comment_count maps to the read-only model field.
const commentCountSelect = "reviews.*, COUNT(comments.comment_id) AS comment_count"

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// GetByID returns a single review with its comment count joined in.
// Returns gorm.ErrRecordNotFound when no row matches.
func (r *ReviewRepository) GetByID(id int64) (*model.Review, error) {
	var review model.Review
	err := r.db.Model(&model.Review{}).
		Select(commentCountSelect).
		Joins("LEFT JOIN comments ON comments.review_id = reviews.review_id").
		Where("reviews.review_id = ?", id).
		Group("reviews.review_id").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns reviews with aggregated comment counts, optionally
// filtered by category. sortBy and order must already be validated
// against the allow-list by the caller; they are interpolated into
// the ORDER BY clause.
func (r *ReviewRepository) List(sortBy, order, category string) ([]*model.Review, error) {
	query := r.db.Model(&model.Review{}).
		Select(commentCountSelect).
		Joins("LEFT JOIN comments ON comments.review_id = reviews.review_id")

	if category != "" {
		query = query.Where("reviews.category = ?", category)
	}

	reviews := []*model.Review{}
	err := query.
		Group("reviews.review_id").
		Order(fmt.Sprintf("reviews.%s %s", sortBy, order)).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

// Exists reports whether a review with the given id exists.
func (r *ReviewRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Review{}).Where("review_id = ?", id).Count(&count).Error
	return count > 0, err
}

// CategoryInUse reports whether any review carries the given category.
func (r *ReviewRepository) CategoryInUse(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Review{}).Where("category = ?", slug).Count(&count).Error
	return count > 0, err
}

// IncrementVotes applies votes = votes + delta in a single statement
// and returns the number of rows affected. Row-level atomicity of the
// single UPDATE is the only concurrency guarantee vote patches rely on.
func (r *ReviewRepository) IncrementVotes(id int64, delta int) (int64, error) {
	result := r.db.Model(&model.Review{}).
		Where("review_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	return result.RowsAffected, result.Error
}
