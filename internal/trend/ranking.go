package trend

import (
	"context"
	"math"
	"sort"

	"trendpulse/internal/models"
	"trendpulse/internal/repository"
)

// Importance weights. Velocity and sentiment enter by magnitude: a strongly
// falling keyword is as noteworthy as a rising one.
const (
	relevanceWeight  = 0.3
	engagementWeight = 0.3
	velocityWeight   = 0.2
	sentimentWeight  = 0.1
	viralityWeight   = 0.1
)

// RankingEngine orders a user's keywords by importance computed from their
// averaged metric rows. Results are cached per user in the ranking region.
type RankingEngine struct {
	keywords repository.KeywordRepository
	metrics  repository.MetricRepository
	cache    *Orchestrator
}

// NewRankingEngine returns a ranking engine.
func NewRankingEngine(
	keywords repository.KeywordRepository,
	metrics repository.MetricRepository,
	cache *Orchestrator,
) *RankingEngine {
	return &RankingEngine{keywords: keywords, metrics: metrics, cache: cache}
}

// Rank returns the user's keywords in descending importance order. Keywords
// without any metric rows are excluded: they carry no evidence either way.
func (e *RankingEngine) Rank(ctx context.Context, userID uint) ([]models.RankingEntry, error) {
	return Resolve(ctx, e.cache, RegionRanking, userID,
		NewCacheable(RegionRanking.TTL(), func(ctx context.Context) ([]models.RankingEntry, error) {
			return e.compute(ctx, userID)
		}))
}

func (e *RankingEngine) compute(ctx context.Context, userID uint) ([]models.RankingEntry, error) {
	keywords, err := e.keywords.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, models.NewRetryableError("keyword registry unavailable", err)
	}

	entries := make([]models.RankingEntry, 0, len(keywords))
	for _, kw := range keywords {
		avg, err := e.metrics.AveragesByKeyword(ctx, kw.ID)
		if err != nil {
			return nil, models.NewRetryableError("metric store unavailable", err)
		}
		if avg.PostCount == 0 {
			continue
		}

		entries = append(entries, models.RankingEntry{
			KeywordID:     kw.ID,
			KeywordText:   kw.Text,
			Importance:    importance(avg),
			AvgRelevance:  avg.Relevance,
			AvgEngagement: avg.Engagement,
			AvgSentiment:  avg.Sentiment,
			AvgVirality:   avg.Virality,
			AvgVelocity:   avg.Velocity,
			PostCount:     avg.PostCount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Importance != entries[j].Importance {
			return entries[i].Importance > entries[j].Importance
		}
		return entries[i].KeywordID < entries[j].KeywordID
	})
	return entries, nil
}

func importance(avg *models.MetricAverages) float64 {
	return relevanceWeight*avg.Relevance +
		engagementWeight*avg.Engagement +
		velocityWeight*math.Abs(avg.Velocity) +
		sentimentWeight*math.Abs(avg.Sentiment) +
		viralityWeight*avg.Virality
}

// Summarize rolls a user's cached keyword snapshots into one summary record,
// cached in the summary region. Keywords without a cached snapshot simply do
// not contribute; the summary never triggers recomputation.
func (e *RankingEngine) Summarize(ctx context.Context, userID uint) (models.UserSummary, error) {
	return Resolve(ctx, e.cache, RegionSummary, userID,
		NewCacheable(RegionSummary.TTL(), func(ctx context.Context) (models.UserSummary, error) {
			return e.computeSummary(ctx, userID)
		}))
}

func (e *RankingEngine) computeSummary(ctx context.Context, userID uint) (models.UserSummary, error) {
	keywords, err := e.keywords.ListByUser(ctx, userID, false)
	if err != nil {
		return models.UserSummary{}, models.NewRetryableError("keyword registry unavailable", err)
	}

	summary := models.UserSummary{UserID: userID}
	var sumEng, sumRel, topEng float64
	var latest int64
	for _, kw := range keywords {
		snapshot, found, err := Get[models.TrendSnapshot](ctx, e.cache, RegionSnapshot, kw.ID)
		if err != nil || !found {
			continue
		}
		summary.Keywords++
		sumEng += snapshot.AvgEngagement
		sumRel += snapshot.AvgRelevance
		switch snapshot.Direction {
		case models.TrendRising:
			summary.Rising++
		case models.TrendFalling:
			summary.Falling++
		}
		if summary.TopKeywordID == 0 || snapshot.AvgEngagement > topEng {
			summary.TopKeywordID = kw.ID
			topEng = snapshot.AvgEngagement
		}
		if ts := snapshot.ComputedAt.Unix(); ts > latest {
			latest = ts
			summary.ComputedAt = snapshot.ComputedAt
		}
	}

	if summary.Keywords > 0 {
		summary.AvgEngagement = sumEng / float64(summary.Keywords)
		summary.AvgRelevance = sumRel / float64(summary.Keywords)
	}
	return summary, nil
}
