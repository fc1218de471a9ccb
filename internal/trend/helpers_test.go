package trend

import (
	"context"
	"errors"
	"testing"
	"time"

	"trendpulse/internal/cache"
	"trendpulse/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// newTestOrchestrator backs the orchestrator with an in-process Redis so TTL
// and expiry behave like production.
func newTestOrchestrator(t *testing.T) (*Orchestrator, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewOrchestrator(cache.NewRedisStore(client)), mr
}

var errStoreDown = errors.New("store down")

// stubStore lets a test fail individual store operations.
type stubStore struct {
	data    map[string][]byte
	getErr  error
	putErr  error
	delErr  error
	putKeys []string
}

func newStubStore() *stubStore {
	return &stubStore{data: map[string][]byte{}}
}

func (s *stubStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	b, ok := s.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return b, nil
}

func (s *stubStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = value
	s.putKeys = append(s.putKeys, key)
	return nil
}

func (s *stubStore) Delete(ctx context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.data, key)
	return nil
}

type keywordRepoStub struct {
	getByID    func(ctx context.Context, id uint) (*models.Keyword, error)
	listByUser func(ctx context.Context, userID uint, activeOnly bool) ([]*models.Keyword, error)
	listActive func(ctx context.Context) ([]*models.Keyword, error)
}

func (s *keywordRepoStub) GetByID(ctx context.Context, id uint) (*models.Keyword, error) {
	return s.getByID(ctx, id)
}

func (s *keywordRepoStub) ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]*models.Keyword, error) {
	return s.listByUser(ctx, userID, activeOnly)
}

func (s *keywordRepoStub) ListActive(ctx context.Context) ([]*models.Keyword, error) {
	return s.listActive(ctx)
}

type postRepoStub struct {
	listByKeyword func(ctx context.Context, keywordID uint) ([]*models.Post, error)
}

func (s *postRepoStub) ListByKeyword(ctx context.Context, keywordID uint) ([]*models.Post, error) {
	return s.listByKeyword(ctx, keywordID)
}

type metricRepoStub struct {
	upsert             func(ctx context.Context, metric *models.Metric) error
	listByKeywordSince func(ctx context.Context, keywordID uint, since time.Time) ([]models.Metric, error)
	averagesByKeyword  func(ctx context.Context, keywordID uint) (*models.MetricAverages, error)
}

func (s *metricRepoStub) Upsert(ctx context.Context, metric *models.Metric) error {
	return s.upsert(ctx, metric)
}

func (s *metricRepoStub) ListByKeywordSince(ctx context.Context, keywordID uint, since time.Time) ([]models.Metric, error) {
	return s.listByKeywordSince(ctx, keywordID, since)
}

func (s *metricRepoStub) AveragesByKeyword(ctx context.Context, keywordID uint) (*models.MetricAverages, error) {
	return s.averagesByKeyword(ctx, keywordID)
}

// collectingMetricRepo records every upserted metric and returns an empty
// velocity history.
type collectingMetricRepo struct {
	upserted []models.Metric
	history  []models.Metric
}

func (s *collectingMetricRepo) Upsert(_ context.Context, metric *models.Metric) error {
	s.upserted = append(s.upserted, *metric)
	return nil
}

func (s *collectingMetricRepo) ListByKeywordSince(context.Context, uint, time.Time) ([]models.Metric, error) {
	return s.history, nil
}

func (s *collectingMetricRepo) AveragesByKeyword(context.Context, uint) (*models.MetricAverages, error) {
	return &models.MetricAverages{}, nil
}

func fixedKeywordRepo(t *testing.T, kw *models.Keyword) *keywordRepoStub {
	t.Helper()
	return &keywordRepoStub{
		getByID: func(_ context.Context, id uint) (*models.Keyword, error) {
			require.Equal(t, kw.ID, id)
			return kw, nil
		},
	}
}

func fixedPostRepo(posts []*models.Post) *postRepoStub {
	return &postRepoStub{
		listByKeyword: func(context.Context, uint) ([]*models.Post, error) {
			return posts, nil
		},
	}
}
