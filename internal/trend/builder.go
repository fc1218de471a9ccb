package trend

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"trendpulse/internal/models"
	"trendpulse/internal/observability"
	"trendpulse/internal/repository"
	"trendpulse/internal/scoring"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// defaultTopTerms is how many extracted terms a snapshot carries.
const defaultTopTerms = 10

// postScores is the per-post vector produced by one analysis run.
type postScores struct {
	relevance  float64
	engagement float64
	sentiment  float64
	virality   float64
}

// Builder orchestrates the scorers into one TrendSnapshot per keyword and
// owns the Metric upsert side effect. Build is idempotent: an unchanged post
// set yields identical per-post scores on every run.
type Builder struct {
	keywords repository.KeywordRepository
	posts    repository.PostRepository
	metrics  repository.MetricRepository
	cache    *Orchestrator
	history  *HistoryTracker
	topTerms int
	now      func() time.Time
}

// NewBuilder creates a snapshot builder. Scorers are constructed fresh per
// Build call; the builder itself holds no per-batch state and is safe for
// concurrent use across keywords.
func NewBuilder(
	keywords repository.KeywordRepository,
	posts repository.PostRepository,
	metrics repository.MetricRepository,
	cache *Orchestrator,
	history *HistoryTracker,
) *Builder {
	return &Builder{
		keywords: keywords,
		posts:    posts,
		metrics:  metrics,
		cache:    cache,
		history:  history,
		topTerms: defaultTopTerms,
		now:      time.Now,
	}
}

// Build analyzes one keyword's current post batch and returns its snapshot.
// An unknown keyword fails immediately; a keyword with zero posts returns
// the canonical empty snapshot. Store failures surface as retryable errors.
func (b *Builder) Build(ctx context.Context, keywordID uint) (*models.TrendSnapshot, error) {
	ctx = observability.WithRunID(ctx, uuid.NewString())
	ctx = observability.WithKeywordID(ctx, keywordID)

	span, ctx := observability.NewSpan(ctx, "trend.build")
	span.AddAttributes(attribute.Int64("keyword_id", int64(keywordID)))
	defer span.End()

	done := observability.TrackAnalysis()

	snapshot, err := b.build(ctx, keywordID)
	switch {
	case err != nil:
		span.SetError(err)
		done("error")
	case snapshot.TotalPosts == 0:
		done("empty")
	default:
		done("ok")
	}
	return snapshot, err
}

// Refresh invalidates the keyword's cached snapshot and rebuilds it. This is
// the force-refresh path: the read is bypassed but the result is still
// written through.
func (b *Builder) Refresh(ctx context.Context, keywordID uint) (*models.TrendSnapshot, error) {
	if err := b.cache.Invalidate(ctx, RegionSnapshot, keywordID); err != nil {
		observability.Logger.WarnContext(ctx, "snapshot invalidation failed",
			slog.String("error", err.Error()))
	}
	return b.Build(ctx, keywordID)
}

func (b *Builder) build(ctx context.Context, keywordID uint) (*models.TrendSnapshot, error) {
	if keywordID == 0 {
		return nil, models.NewValidationError("keyword id is required")
	}
	if _, err := b.keywords.GetByID(ctx, keywordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("keyword", keywordID)
		}
		return nil, models.NewRetryableError("keyword registry unavailable", err)
	}

	posts, err := b.posts.ListByKeyword(ctx, keywordID)
	if err != nil {
		return nil, models.NewRetryableError("corpus store unavailable", err)
	}

	now := b.now()
	if len(posts) == 0 {
		snapshot := models.EmptySnapshot(keywordID, now, RegionSnapshot.TTL())
		b.writeThrough(ctx, &snapshot)
		return &snapshot, nil
	}

	// A missing post record still counts toward the batch; it just carries
	// zero vectors, the same degradation as a per-post scoring failure.
	valid := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if p == nil {
			observability.Logger.WarnContext(ctx, "nil post record, counting it with zero vectors")
			continue
		}
		valid = append(valid, p)
	}

	relevance, engagement := b.scoreBatch(ctx, valid)
	sentiment := scoring.NewSentimentScorer()
	virality := scoring.NewViralityScorer()

	scores := make(map[uint]postScores, len(valid))
	for _, p := range valid {
		scores[p.ID] = b.scorePost(ctx, p, relevance.Scores, engagement, sentiment, virality, now)
	}

	history, err := b.metrics.ListByKeywordSince(ctx, keywordID, now.Add(-scoring.VelocityWindow))
	if err != nil {
		return nil, models.NewRetryableError("metric store unavailable", err)
	}
	velocity := scoring.NewVelocityEstimator().Estimate(history)
	confidence := scoring.NewConfidenceEstimator().Estimate(len(posts), velocity)

	for _, p := range valid {
		s := scores[p.ID]
		metric := &models.Metric{
			PostID:     p.ID,
			KeywordID:  keywordID,
			Relevance:  s.relevance,
			Engagement: s.engagement,
			Sentiment:  s.sentiment,
			Virality:   s.virality,
			Velocity:   velocity,
			ComputedAt: now,
		}
		if err := b.metrics.Upsert(ctx, metric); err != nil {
			return nil, models.NewRetryableError("metric store unavailable", err)
		}
	}

	snapshot := b.assemble(keywordID, len(posts), valid, scores, relevance.TopTerms, velocity, confidence, now)
	b.writeThrough(ctx, snapshot)

	entry := models.HistoryEntry{
		Relevance:  snapshot.AvgRelevance,
		Engagement: snapshot.AvgEngagement,
		Velocity:   velocity,
		PostCount:  snapshot.TotalPosts,
		Confidence: confidence,
		RecordedAt: now,
	}
	if err := b.history.Append(ctx, keywordID, entry); err != nil {
		observability.Logger.WarnContext(ctx, "history append failed",
			slog.String("error", err.Error()))
	}

	return snapshot, nil
}

// scoreBatch runs the batch-scoped scorers. A panic inside the vectorizer
// degrades the whole batch to zero relevance and engagement; a malformed
// batch must still yield a snapshot.
func (b *Builder) scoreBatch(ctx context.Context, posts []*models.Post) (relevance scoring.RelevanceResult, engagement map[uint]float64) {
	defer func() {
		if r := recover(); r != nil {
			observability.Logger.WarnContext(ctx, "batch scoring failed, using zero vectors",
				slog.Any("panic", r))
			relevance = scoring.RelevanceResult{
				Scores:   map[uint]float64{},
				TopTerms: []models.TermScore{},
			}
			engagement = map[uint]float64{}
		}
	}()

	// Fresh scorers every run: no vectorizer state leaks across batches.
	relevance = scoring.NewRelevanceScorer().Score(posts, b.topTerms)
	engagement = scoring.NewEngagementScorer().Score(posts)
	return relevance, engagement
}

// scorePost computes one post's score vector. A malformed post degrades to a
// zero vector and stays in the batch count; one bad post must never abort a
// keyword's analysis.
func (b *Builder) scorePost(
	ctx context.Context,
	post *models.Post,
	relevance map[uint]float64,
	engagement map[uint]float64,
	sentiment *scoring.SentimentScorer,
	virality *scoring.ViralityScorer,
	now time.Time,
) (s postScores) {
	defer func() {
		if r := recover(); r != nil {
			observability.Logger.WarnContext(ctx, "post scoring failed, using zero vector",
				slog.Uint64("post_id", uint64(post.ID)),
				slog.Any("panic", r))
			s = postScores{}
		}
	}()

	s.relevance = relevance[post.ID]
	s.engagement = engagement[post.ID]
	s.sentiment = sentiment.Score(post.FullText())
	s.virality = virality.Score(post, now)
	return s
}

func (b *Builder) assemble(
	keywordID uint,
	totalPosts int,
	posts []*models.Post,
	scores map[uint]postScores,
	topTerms []models.TermScore,
	velocity, confidence float64,
	now time.Time,
) *models.TrendSnapshot {
	n := float64(totalPosts)
	engagementByPost := make(map[uint]float64, len(posts))

	var sumRel, sumEng, sumSent, sumVir float64
	for _, p := range posts {
		s := scores[p.ID]
		sumRel += s.relevance
		sumEng += s.engagement
		sumSent += s.sentiment
		sumVir += s.virality
		engagementByPost[p.ID] = s.engagement
	}

	// Zero-vector posts without a scoreable record land in the low tier.
	tiers := scoring.Tiers(engagementByPost)
	tiers.Low += totalPosts - len(posts)

	return &models.TrendSnapshot{
		KeywordID:     keywordID,
		AvgRelevance:  sumRel / n,
		AvgEngagement: sumEng / n,
		AvgSentiment:  sumSent / n,
		AvgVirality:   sumVir / n,
		Velocity:      velocity,
		Direction:     models.DirectionFor(velocity),
		Confidence:    confidence,
		TotalPosts:    totalPosts,
		TopTerms:      topTerms,
		Tiers:         tiers,
		ComputedAt:    now,
		ExpiresAt:     now.Add(RegionSnapshot.TTL()),
	}
}

// writeThrough caches the snapshot. A failed cache write after a successful
// metric upsert leaves stale-but-not-wrong data and only warrants a warning.
func (b *Builder) writeThrough(ctx context.Context, snapshot *models.TrendSnapshot) {
	if err := Put(ctx, b.cache, RegionSnapshot, snapshot.KeywordID, snapshot); err != nil {
		observability.Logger.WarnContext(ctx, "snapshot cache write failed",
			slog.String("error", err.Error()))
	}
}

// Snapshot returns the keyword's cached snapshot, rebuilding on a miss.
func (b *Builder) Snapshot(ctx context.Context, keywordID uint) (*models.TrendSnapshot, error) {
	cached, found, err := Get[*models.TrendSnapshot](ctx, b.cache, RegionSnapshot, keywordID)
	if err == nil && found && cached != nil {
		return cached, nil
	}
	return b.Build(ctx, keywordID)
}
