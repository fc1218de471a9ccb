package models

import (
	"time"
)

// Metric holds the computed scores for a single post. There is exactly one
// row per post; recomputation overwrites the existing row rather than
// appending a new one (the history cache is the append log).
type Metric struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	PostID     uint    `gorm:"not null;uniqueIndex" json:"post_id"`
	KeywordID  uint    `gorm:"not null;index" json:"keyword_id"`
	Relevance  float64 `gorm:"not null;default:0" json:"relevance"`
	Engagement float64 `gorm:"not null;default:0" json:"engagement"`
	Sentiment  float64 `gorm:"not null;default:0" json:"sentiment"`
	Virality   float64 `gorm:"not null;default:0" json:"virality"`
	// Velocity is shared by every post scored in the same batch.
	Velocity   float64   `gorm:"not null;default:0" json:"velocity"`
	ComputedAt time.Time `gorm:"not null;index" json:"computed_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MetricAverages is not persisted; it is the per-keyword aggregate the
// ranking engine works from.
type MetricAverages struct {
	KeywordID  uint    `json:"keyword_id"`
	Relevance  float64 `json:"relevance"`
	Engagement float64 `json:"engagement"`
	Sentiment  float64 `json:"sentiment"`
	Virality   float64 `json:"virality"`
	Velocity   float64 `json:"velocity"`
	PostCount  int     `json:"post_count"`
}
