package models

import (
	"time"
)

// TrendDirection classifies the sign of a keyword's trend velocity.
type TrendDirection string

const (
	TrendRising  TrendDirection = "rising"
	TrendFalling TrendDirection = "falling"
	TrendStable  TrendDirection = "stable"
)

// DirectionFor maps a velocity to its direction using the ±0.1 dead band.
func DirectionFor(velocity float64) TrendDirection {
	switch {
	case velocity > 0.1:
		return TrendRising
	case velocity < -0.1:
		return TrendFalling
	default:
		return TrendStable
	}
}

// TermScore is one extracted term with its average TF-IDF weight.
type TermScore struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// EngagementTiers buckets a batch's posts by engagement score.
// Low is engagement < 0.33, High is engagement >= 0.66.
type EngagementTiers struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// TrendSnapshot is the cache-resident aggregate result of analyzing one
// keyword's current post batch. It is fully rebuildable from Metric and Post
// rows and is never the system of record.
type TrendSnapshot struct {
	KeywordID     uint            `json:"keyword_id"`
	AvgRelevance  float64         `json:"avg_relevance"`
	AvgEngagement float64         `json:"avg_engagement"`
	AvgSentiment  float64         `json:"avg_sentiment"`
	AvgVirality   float64         `json:"avg_virality"`
	Velocity      float64         `json:"velocity"`
	Direction     TrendDirection  `json:"direction"`
	Confidence    float64         `json:"confidence"`
	TotalPosts    int             `json:"total_posts"`
	TopTerms      []TermScore     `json:"top_terms"`
	Tiers         EngagementTiers `json:"tiers"`
	ComputedAt    time.Time       `json:"computed_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// EmptySnapshot is the canonical zero-valued snapshot for a keyword with no
// posts. It is a well-formed result, not an error.
func EmptySnapshot(keywordID uint, now time.Time, ttl time.Duration) TrendSnapshot {
	return TrendSnapshot{
		KeywordID:  keywordID,
		Direction:  TrendStable,
		TopTerms:   []TermScore{},
		ComputedAt: now,
		ExpiresAt:  now.Add(ttl),
	}
}

// HistoryEntry is the compact slice of a snapshot kept in the per-keyword
// trend history.
type HistoryEntry struct {
	Relevance  float64   `json:"relevance"`
	Engagement float64   `json:"engagement"`
	Velocity   float64   `json:"velocity"`
	PostCount  int       `json:"post_count"`
	Confidence float64   `json:"confidence"`
	RecordedAt time.Time `json:"recorded_at"`
}

// RankingEntry is one keyword's position in a user's importance ranking.
type RankingEntry struct {
	KeywordID     uint    `json:"keyword_id"`
	KeywordText   string  `json:"keyword_text"`
	Importance    float64 `json:"importance"`
	AvgRelevance  float64 `json:"avg_relevance"`
	AvgEngagement float64 `json:"avg_engagement"`
	AvgSentiment  float64 `json:"avg_sentiment"`
	AvgVirality   float64 `json:"avg_virality"`
	AvgVelocity   float64 `json:"avg_velocity"`
	PostCount     int     `json:"post_count"`
}

// ComparisonSummary aggregates engagement and relevance across the keywords
// included in a comparison. It is only populated when at least two keywords
// had cached snapshots.
type ComparisonSummary struct {
	Keywords      int     `json:"keywords"`
	MinEngagement float64 `json:"min_engagement"`
	MaxEngagement float64 `json:"max_engagement"`
	AvgEngagement float64 `json:"avg_engagement"`
	MinRelevance  float64 `json:"min_relevance"`
	MaxRelevance  float64 `json:"max_relevance"`
	AvgRelevance  float64 `json:"avg_relevance"`
}

// Comparison is a side-by-side view over cached snapshots. Keywords without
// a cached snapshot are listed in Missing rather than triggering recomputation.
type Comparison struct {
	Snapshots []TrendSnapshot    `json:"snapshots"`
	Missing   []uint             `json:"missing,omitempty"`
	Summary   *ComparisonSummary `json:"summary,omitempty"`
}

// UserSummary is the cached per-user rollup across a user's keyword snapshots.
type UserSummary struct {
	UserID        uint      `json:"user_id"`
	Keywords      int       `json:"keywords"`
	AvgEngagement float64   `json:"avg_engagement"`
	AvgRelevance  float64   `json:"avg_relevance"`
	TopKeywordID  uint      `json:"top_keyword_id"`
	Rising        int       `json:"rising"`
	Falling       int       `json:"falling"`
	ComputedAt    time.Time `json:"computed_at"`
}
