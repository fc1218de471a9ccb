// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"trendpulse/internal/models"
	"trendpulse/internal/observability"

	"gorm.io/gorm"
)

// KeywordRepository defines the interface for keyword registry operations.
// The engine only reads keywords; creation belongs to the ingestion layer.
type KeywordRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Keyword, error)
	ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]*models.Keyword, error)
	ListActive(ctx context.Context) ([]*models.Keyword, error)
}

type keywordRepository struct {
	db *gorm.DB
}

// NewKeywordRepository creates a new keyword repository
func NewKeywordRepository(db *gorm.DB) KeywordRepository {
	return &keywordRepository{db: db}
}

func (r *keywordRepository) GetByID(ctx context.Context, id uint) (*models.Keyword, error) {
	defer observability.TrackQuery("get", "keywords")()

	var keyword models.Keyword
	if err := r.db.WithContext(ctx).First(&keyword, id).Error; err != nil {
		return nil, err
	}
	return &keyword, nil
}

func (r *keywordRepository) ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]*models.Keyword, error) {
	defer observability.TrackQuery("list_by_user", "keywords")()

	var keywords []*models.Keyword
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Order("created_at ASC").Find(&keywords).Error
	return keywords, err
}

func (r *keywordRepository) ListActive(ctx context.Context) ([]*models.Keyword, error) {
	defer observability.TrackQuery("list_active", "keywords")()

	var keywords []*models.Keyword
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&keywords).Error
	return keywords, err
}
