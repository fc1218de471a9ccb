package scoring

import (
	"time"

	"trendpulse/internal/models"
)

const (
	viralityScale = 100.0
	minAgeHours   = 0.01
)

// ViralityScorer estimates engagement per unit time since publication.
type ViralityScorer struct{}

// NewViralityScorer returns a virality scorer.
func NewViralityScorer() *ViralityScorer {
	return &ViralityScorer{}
}

// Score returns virality in [0,1] for a post evaluated at now. Unknown or
// non-positive age means the raw score is used undivided; ages below
// minAgeHours are clamped so brand-new posts cannot divide by near zero.
func (s *ViralityScorer) Score(post *models.Post, now time.Time) float64 {
	raw := float64(post.Score)
	if raw < 0 {
		raw = 0
	}

	if !post.PublishedAt.IsZero() {
		hours := now.Sub(post.PublishedAt).Hours()
		if hours > 0 {
			if hours < minAgeHours {
				hours = minAgeHours
			}
			raw = raw / hours
		}
	}

	v := raw / viralityScale
	if v > 1 {
		return 1
	}
	return v
}
