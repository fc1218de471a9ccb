package scoring

import (
	"trendpulse/internal/models"
)

const (
	scoreWeight   = 0.6
	commentWeight = 0.4
)

// EngagementScorer normalizes raw engagement counters into [0,1]. The score
// is relative to the batch: recomputing against a different post set changes
// every value.
type EngagementScorer struct{}

// NewEngagementScorer returns a batch-scoped engagement scorer.
func NewEngagementScorer() *EngagementScorer {
	return &EngagementScorer{}
}

// Score returns one engagement value per post. A batch-wide max of zero
// zeroes that term instead of dividing by zero.
func (s *EngagementScorer) Score(posts []*models.Post) map[uint]float64 {
	scores := make(map[uint]float64, len(posts))

	maxScore, maxComments := 0, 0
	for _, p := range posts {
		if p.Score > maxScore {
			maxScore = p.Score
		}
		if p.CommentCount > maxComments {
			maxComments = p.CommentCount
		}
	}

	for _, p := range posts {
		var scorePart, commentPart float64
		if maxScore > 0 {
			scorePart = float64(p.Score) / float64(maxScore)
		}
		if maxComments > 0 {
			commentPart = float64(p.CommentCount) / float64(maxComments)
		}
		scores[p.ID] = scoreWeight*scorePart + commentWeight*commentPart
	}
	return scores
}

// Tiers buckets engagement scores into the low/medium/high histogram kept on
// a snapshot. Low is < 0.33, high is >= 0.66.
func Tiers(scores map[uint]float64) models.EngagementTiers {
	var tiers models.EngagementTiers
	for _, v := range scores {
		switch {
		case v < 0.33:
			tiers.Low++
		case v >= 0.66:
			tiers.High++
		default:
			tiers.Medium++
		}
	}
	return tiers
}
