package repository

import (
	"context"
	"time"

	"trendpulse/internal/models"
	"trendpulse/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetricRepository is the metric persistence store. Upsert enforces the
// one-metric-per-post invariant: a recomputation overwrites the existing row.
type MetricRepository interface {
	Upsert(ctx context.Context, metric *models.Metric) error
	ListByKeywordSince(ctx context.Context, keywordID uint, since time.Time) ([]models.Metric, error)
	AveragesByKeyword(ctx context.Context, keywordID uint) (*models.MetricAverages, error)
}

type metricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new metric repository
func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

func (r *metricRepository) Upsert(ctx context.Context, metric *models.Metric) error {
	defer observability.TrackQuery("upsert", "metrics")()

	// Last write wins per post id; concurrent runs on the same keyword are
	// tolerated because metrics are point-in-time, not an append log.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "post_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"keyword_id", "relevance", "engagement", "sentiment",
				"virality", "velocity", "computed_at", "updated_at",
			}),
		}).
		Create(metric).Error
}

func (r *metricRepository) ListByKeywordSince(ctx context.Context, keywordID uint, since time.Time) ([]models.Metric, error) {
	defer observability.TrackQuery("list_since", "metrics")()

	var metrics []models.Metric
	err := r.db.WithContext(ctx).
		Where("keyword_id = ? AND computed_at >= ?", keywordID, since).
		Order("computed_at ASC").
		Find(&metrics).Error
	return metrics, err
}

func (r *metricRepository) AveragesByKeyword(ctx context.Context, keywordID uint) (*models.MetricAverages, error) {
	defer observability.TrackQuery("averages", "metrics")()

	var row struct {
		Relevance  float64
		Engagement float64
		Sentiment  float64
		Virality   float64
		Velocity   float64
		PostCount  int
	}
	err := r.db.WithContext(ctx).
		Model(&models.Metric{}).
		Select(
			"COALESCE(AVG(relevance), 0) AS relevance, "+
				"COALESCE(AVG(engagement), 0) AS engagement, "+
				"COALESCE(AVG(sentiment), 0) AS sentiment, "+
				"COALESCE(AVG(virality), 0) AS virality, "+
				"COALESCE(AVG(velocity), 0) AS velocity, "+
				"COUNT(*) AS post_count").
		Where("keyword_id = ?", keywordID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &models.MetricAverages{
		KeywordID:  keywordID,
		Relevance:  row.Relevance,
		Engagement: row.Engagement,
		Sentiment:  row.Sentiment,
		Virality:   row.Virality,
		Velocity:   row.Velocity,
		PostCount:  row.PostCount,
	}, nil
}
