package seed

import (
	"time"

	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/model"
)

// Seeder loads the sample board-game dataset for local development.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll wipes every table, children first.
func (s *Seeder) ClearAll() error {
	tables := []string{"comments", "reviews", "users", "categories"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// Load inserts the sample data in referential order.
func (s *Seeder) Load() error {
	if err := s.db.Create(sampleCategories()).Error; err != nil {
		return err
	}
	if err := s.db.Create(sampleUsers()).Error; err != nil {
		return err
	}

	reviews := sampleReviews()
	if err := s.db.Create(reviews).Error; err != nil {
		return err
	}

	// comments reference the first two seeded reviews
	if err := s.db.Create(sampleComments(reviews[0].ReviewID, reviews[1].ReviewID)).Error; err != nil {
		return err
	}

	return nil
}

func sampleCategories() []*model.Category {
	return []*model.Category{
		{Slug: "euro game", Description: "Abstact games that involve little luck"},
		{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
		{Slug: "dexterity", Description: "Games involving physical skill"},
		{Slug: "children's games", Description: "Games suitable for children"},
	}
}

func sampleUsers() []*model.User {
	return []*model.User{
		{
			Username:  "mallionaire",
			Name:      "haz",
			AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
		},
		{
			Username:  "philippaclaire9",
			Name:      "philippa",
			AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
		},
		{
			Username:  "bainesface",
			Name:      "sarah",
			AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
		},
		{
			Username:  "dav3rid",
			Name:      "dave",
			AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
		},
	}
}

func sampleReviews() []*model.Review {
	return []*model.Review{
		{
			Title:        "Agricola",
			Designer:     "Uwe Rosenberg",
			Owner:        "mallionaire",
			ReviewBody:   "Farmyard fun!",
			ReviewImgURL: "https://images.pexels.com/photos/974314/pexels-photo-974314.jpeg?w=700&h=700",
			Category:     "euro game",
			Votes:        1,
			CreatedAt:    time.Date(2021, 1, 18, 10, 0, 20, 514000000, time.UTC),
		},
		{
			Title:        "Jenga",
			Designer:     "Leslie Scott",
			Owner:        "philippaclaire9",
			ReviewBody:   "Fiddly fun for all the family",
			ReviewImgURL: "https://images.pexels.com/photos/4473494/pexels-photo-4473494.jpeg?w=700&h=700",
			Category:     "dexterity",
			Votes:        5,
			CreatedAt:    time.Date(2021, 1, 18, 10, 1, 41, 251000000, time.UTC),
		},
		{
			Title:        "Ultimate Werewolf",
			Designer:     "Akihisa Okui",
			Owner:        "bainesface",
			ReviewBody:   "We couldn't find the werewolf!",
			ReviewImgURL: "https://images.pexels.com/photos/5350049/pexels-photo-5350049.jpeg?w=700&h=700",
			Category:     "social deduction",
			Votes:        5,
			CreatedAt:    time.Date(2021, 1, 18, 10, 1, 41, 251000000, time.UTC),
		},
		{
			Title:        "Dolor reprehenderit",
			Designer:     "Gamey McGameface",
			Owner:        "mallionaire",
			ReviewBody:   "Consequat velit occaecat voluptate do",
			ReviewImgURL: "https://images.pexels.com/photos/278918/pexels-photo-278918.jpeg?w=700&h=700",
			Category:     "social deduction",
			Votes:        7,
			CreatedAt:    time.Date(2021, 1, 22, 11, 35, 50, 936000000, time.UTC),
		},
	}
}

func sampleComments(firstReviewID, secondReviewID int64) []*model.Comment {
	return []*model.Comment{
		{
			Body:      "I loved this game too!",
			ReviewID:  secondReviewID,
			Author:    "bainesface",
			Votes:     16,
			CreatedAt: time.Date(2017, 11, 22, 12, 43, 33, 389000000, time.UTC),
		},
		{
			Body:      "My dog loved this game too!",
			ReviewID:  secondReviewID,
			Author:    "mallionaire",
			Votes:     13,
			CreatedAt: time.Date(2021, 1, 18, 10, 9, 5, 410000000, time.UTC),
		},
		{
			Body:      "I didn't know dogs could play games",
			ReviewID:  secondReviewID,
			Author:    "philippaclaire9",
			Votes:     10,
			CreatedAt: time.Date(2021, 1, 18, 10, 9, 48, 110000000, time.UTC),
		},
		{
			Body:      "EPIC board game!",
			ReviewID:  firstReviewID,
			Author:    "bainesface",
			Votes:     16,
			CreatedAt: time.Date(2017, 11, 22, 12, 36, 3, 389000000, time.UTC),
		},
	}
}
