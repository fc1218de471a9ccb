package trend

import (
	"context"

	"trendpulse/internal/models"
)

// ComparisonEngine joins cached snapshots for an arbitrary keyword set into
// a side-by-side view. It reads the snapshot region only and never triggers
// recomputation; a keyword without a cached snapshot is reported as missing.
type ComparisonEngine struct {
	cache *Orchestrator
}

// NewComparisonEngine returns a comparison engine.
func NewComparisonEngine(cache *Orchestrator) *ComparisonEngine {
	return &ComparisonEngine{cache: cache}
}

// Compare collects the cached snapshots for the given keywords. The summary
// is only computed when at least two keywords have data; fewer is a valid,
// summary-less result rather than an error.
func (e *ComparisonEngine) Compare(ctx context.Context, keywordIDs []uint) (*models.Comparison, error) {
	comparison := &models.Comparison{
		Snapshots: make([]models.TrendSnapshot, 0, len(keywordIDs)),
	}

	for _, id := range keywordIDs {
		snapshot, found, err := Get[models.TrendSnapshot](ctx, e.cache, RegionSnapshot, id)
		if err != nil {
			return nil, models.NewRetryableError("cache store unavailable", err)
		}
		if !found {
			comparison.Missing = append(comparison.Missing, id)
			continue
		}
		comparison.Snapshots = append(comparison.Snapshots, snapshot)
	}

	if len(comparison.Snapshots) >= 2 {
		comparison.Summary = summarize(comparison.Snapshots)
	}
	return comparison, nil
}

func summarize(snapshots []models.TrendSnapshot) *models.ComparisonSummary {
	s := &models.ComparisonSummary{
		Keywords:      len(snapshots),
		MinEngagement: snapshots[0].AvgEngagement,
		MaxEngagement: snapshots[0].AvgEngagement,
		MinRelevance:  snapshots[0].AvgRelevance,
		MaxRelevance:  snapshots[0].AvgRelevance,
	}

	var sumEng, sumRel float64
	for _, snap := range snapshots {
		sumEng += snap.AvgEngagement
		sumRel += snap.AvgRelevance
		if snap.AvgEngagement < s.MinEngagement {
			s.MinEngagement = snap.AvgEngagement
		}
		if snap.AvgEngagement > s.MaxEngagement {
			s.MaxEngagement = snap.AvgEngagement
		}
		if snap.AvgRelevance < s.MinRelevance {
			s.MinRelevance = snap.AvgRelevance
		}
		if snap.AvgRelevance > s.MaxRelevance {
			s.MaxRelevance = snap.AvgRelevance
		}
	}
	s.AvgEngagement = sumEng / float64(len(snapshots))
	s.AvgRelevance = sumRel / float64(len(snapshots))
	return s
}
