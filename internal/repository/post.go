package repository

import (
	"context"

	"trendpulse/internal/models"
	"trendpulse/internal/observability"

	"gorm.io/gorm"
)

// PostRepository is the read-only corpus store interface. Posts are owned by
// the ingestion layer; the engine never writes them.
type PostRepository interface {
	ListByKeyword(ctx context.Context, keywordID uint) ([]*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) ListByKeyword(ctx context.Context, keywordID uint) ([]*models.Post, error) {
	defer observability.TrackQuery("list_by_keyword", "posts")()

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("keyword_id = ?", keywordID).
		Order("published_at DESC").
		Find(&posts).Error
	return posts, err
}
