package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is one collected social-media post attached to exactly one keyword.
// Score is the platform's raw upvote-like counter at collection time.
type Post struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	KeywordID    uint           `gorm:"not null;index" json:"keyword_id"`
	Keyword      *Keyword       `gorm:"foreignKey:KeywordID" json:"keyword,omitempty"`
	Title        string         `gorm:"not null" json:"title"`
	Content      string         `gorm:"type:text" json:"content"`
	Score        int            `gorm:"not null;default:0" json:"score"`
	CommentCount int            `gorm:"not null;default:0" json:"comment_count"`
	PublishedAt  time.Time      `json:"published_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// FullText returns the text the relevance and sentiment scorers operate on.
func (p *Post) FullText() string {
	if p.Content == "" {
		return p.Title
	}
	return p.Title + " " + p.Content
}
