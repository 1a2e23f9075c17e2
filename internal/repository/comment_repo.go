package repository

import (
	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID returns gorm.ErrRecordNotFound when no row matches.
func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("comment_id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByReviewID returns the comments of a review, most recent first.
func (r *CommentRepository) ListByReviewID(reviewID int64) ([]*model.Comment, error) {
	// empty slice, not nil, so a commentless review serializes as []
	comments := []*model.Comment{}
	err := r.db.Where("review_id = ?", reviewID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// IncrementVotes applies votes = votes + delta in a single statement.
func (r *CommentRepository) IncrementVotes(id int64, delta int) (int64, error) {
	result := r.db.Model(&model.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	return result.RowsAffected, result.Error
}

// Delete removes a comment permanently and returns the number of rows
// deleted (zero when the id does not exist).
func (r *CommentRepository) Delete(id int64) (int64, error) {
	result := r.db.Delete(&model.Comment{}, id)
	return result.RowsAffected, result.Error
}
