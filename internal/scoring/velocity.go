package scoring

import (
	"sort"
	"time"

	"trendpulse/internal/models"
)

// VelocityWindow is the trailing metric-history window velocity is estimated
// over.
const VelocityWindow = 7 * 24 * time.Hour

// VelocityEstimator compares recent vs. older metric history to estimate
// trend acceleration.
type VelocityEstimator struct{}

// NewVelocityEstimator returns a velocity estimator.
func NewVelocityEstimator() *VelocityEstimator {
	return &VelocityEstimator{}
}

// Estimate splits the history at its midpoint and returns the difference of
// mean engagement between the recent and older halves, scaled by history
// length. Fewer than two rows yields 0. This is a plain first-difference
// estimator; it is sensitive to irregular sampling cadence.
func (e *VelocityEstimator) Estimate(history []models.Metric) float64 {
	if len(history) < 2 {
		return 0
	}

	ordered := make([]models.Metric, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ComputedAt.Before(ordered[j].ComputedAt)
	})

	mid := len(ordered) / 2
	older := ordered[:mid]
	recent := ordered[mid:]

	return (meanEngagement(recent) - meanEngagement(older)) / float64(len(ordered)) * 100
}

func meanEngagement(metrics []models.Metric) float64 {
	if len(metrics) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range metrics {
		sum += m.Engagement
	}
	return sum / float64(len(metrics))
}
