// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"trendpulse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much data the seeder creates.
type Options struct {
	Users           int
	KeywordsPerUser int
	PostsPerKeyword int
	MaxDays         int
}

// Seeder populates the database with fake keywords and posts.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.Users <= 0 {
		opts.Users = 5
	}
	if opts.KeywordsPerUser <= 0 {
		opts.KeywordsPerUser = 4
	}
	if opts.PostsPerKeyword <= 0 {
		opts.PostsPerKeyword = 25
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 14
	}
	return &Seeder{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ClearAll removes previously seeded data.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Metric{}, &models.Post{}, &models.Keyword{}} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}
	return nil
}

// Run creates keywords and posts for a set of synthetic users.
func (s *Seeder) Run() error {
	for userID := uint(1); userID <= uint(s.opts.Users); userID++ {
		for k := 0; k < s.opts.KeywordsPerUser; k++ {
			keyword := &models.Keyword{
				Text:   gofakeit.BuzzWord(),
				UserID: userID,
				Active: true,
			}
			if err := s.db.Create(keyword).Error; err != nil {
				return fmt.Errorf("failed to create keyword: %w", err)
			}
			if err := s.seedPosts(keyword); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedPosts(keyword *models.Keyword) error {
	posts := make([]*models.Post, 0, s.opts.PostsPerKeyword)
	for i := 0; i < s.opts.PostsPerKeyword; i++ {
		posts = append(posts, s.BuildPost(keyword))
	}
	if err := s.db.Create(posts).Error; err != nil {
		return fmt.Errorf("failed to create posts for keyword %d: %w", keyword.ID, err)
	}
	return nil
}

// BuildPost constructs a post for the keyword without persisting it. About
// half the posts mention the keyword text so relevance scores spread out.
func (s *Seeder) BuildPost(keyword *models.Keyword) *models.Post {
	title := gofakeit.Sentence(6)
	content := gofakeit.Paragraph(1, 3, 8, "\n")
	if s.rng.Intn(2) == 0 {
		title = fmt.Sprintf("%s: %s", keyword.Text, title)
		content = fmt.Sprintf("%s %s", keyword.Text, content)
	}

	// realistic published_at spread over the recent window
	hoursBack := s.rng.Intn(s.opts.MaxDays*24) + 1

	return &models.Post{
		KeywordID:    keyword.ID,
		Title:        title,
		Content:      content,
		Score:        s.rng.Intn(500),
		CommentCount: s.rng.Intn(80),
		PublishedAt:  time.Now().Add(-time.Duration(hoursBack) * time.Hour),
	}
}
