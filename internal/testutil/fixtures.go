package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
)

var fixtureSeq int64

func nextSeq() int64 {
	return atomic.AddInt64(&fixtureSeq, 1)
}

// TestCategory creates a category row.
func TestCategory(t *testing.T, db *gorm.DB, slug, description string) *model.Category {
	t.Helper()

	category := &model.Category{
		Slug:        slug,
		Description: description,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}

	return category
}

// TestUser creates a user row with a unique username.
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	seq := nextSeq()
	user := &model.User{
		Username:  fmt.Sprintf("testuser_%d", seq),
		Name:      fmt.Sprintf("Test User %d", seq),
		AvatarURL: "https://avatars.example.com/default.png",
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUsername sets the username.
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// WithName sets the display name.
func WithName(name string) func(*model.User) {
	return func(u *model.User) {
		u.Name = name
	}
}

// TestReview creates a review row owned by owner in category.
func TestReview(t *testing.T, db *gorm.DB, owner, category string, opts ...func(*model.Review)) *model.Review {
	t.Helper()

	review := &model.Review{
		Title:        fmt.Sprintf("Test Review %d", nextSeq()),
		Designer:     "Uwe Rosenberg",
		Owner:        owner,
		ReviewBody:   "Farmyard fun!",
		ReviewImgURL: "https://images.example.com/review.jpeg",
		Category:     category,
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(review)
	}

	if err := db.Create(review).Error; err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}

	return review
}

// WithTitle sets the review title.
func WithTitle(title string) func(*model.Review) {
	return func(r *model.Review) {
		r.Title = title
	}
}

// WithReviewVotes sets the initial vote count.
func WithReviewVotes(votes int) func(*model.Review) {
	return func(r *model.Review) {
		r.Votes = votes
	}
}

// WithReviewCreatedAt pins the creation timestamp, for ordering tests.
func WithReviewCreatedAt(ts time.Time) func(*model.Review) {
	return func(r *model.Review) {
		r.CreatedAt = ts
	}
}

// TestComment creates a comment row by author on the given review.
func TestComment(t *testing.T, db *gorm.DB, author string, reviewID int64, body string, opts ...func(*model.Comment)) *model.Comment {
	t.Helper()

	comment := &model.Comment{
		Body:      body,
		ReviewID:  reviewID,
		Author:    author,
		CreatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(comment)
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return comment
}

// WithCommentVotes sets the initial vote count.
func WithCommentVotes(votes int) func(*model.Comment) {
	return func(c *model.Comment) {
		c.Votes = votes
	}
}

// WithCommentCreatedAt pins the creation timestamp, for ordering tests.
func WithCommentCreatedAt(ts time.Time) func(*model.Comment) {
	return func(c *model.Comment) {
		c.CreatedAt = ts
	}
}
