package scoring

import (
	"testing"

	"trendpulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementScorer_Score(t *testing.T) {
	t.Parallel()

	posts := []*models.Post{
		{ID: 1, Score: 10, CommentCount: 1},
		{ID: 2, Score: 50, CommentCount: 5},
		{ID: 3, Score: 100, CommentCount: 20},
	}

	scores := NewEngagementScorer().Score(posts)
	require.Len(t, scores, 3)

	// Post 3 holds the max of both dimensions.
	assert.InDelta(t, 1.0, scores[3], 1e-9)
	// 0.6*(10/100) + 0.4*(1/20) = 0.06 + 0.02
	assert.InDelta(t, 0.08, scores[1], 1e-9)

	for id, v := range scores {
		assert.GreaterOrEqual(t, v, 0.0, "post %d", id)
		assert.LessOrEqual(t, v, 1.0, "post %d", id)
	}
}

func TestEngagementScorer_ZeroMaxes(t *testing.T) {
	t.Parallel()

	t.Run("all counters zero", func(t *testing.T) {
		t.Parallel()
		posts := []*models.Post{{ID: 1}, {ID: 2}}
		scores := NewEngagementScorer().Score(posts)
		assert.Equal(t, 0.0, scores[1])
		assert.Equal(t, 0.0, scores[2])
	})

	t.Run("zero comments only zeroes the comment term", func(t *testing.T) {
		t.Parallel()
		posts := []*models.Post{{ID: 1, Score: 50}, {ID: 2, Score: 100}}
		scores := NewEngagementScorer().Score(posts)
		assert.InDelta(t, 0.3, scores[1], 1e-9)
		assert.InDelta(t, 0.6, scores[2], 1e-9)
	})
}

func TestEngagementScorer_RelativeToBatch(t *testing.T) {
	t.Parallel()

	small := []*models.Post{{ID: 1, Score: 10, CommentCount: 2}, {ID: 2, Score: 5, CommentCount: 1}}
	large := []*models.Post{{ID: 1, Score: 10, CommentCount: 2}, {ID: 3, Score: 1000, CommentCount: 200}}

	smallScores := NewEngagementScorer().Score(small)
	largeScores := NewEngagementScorer().Score(large)

	assert.Greater(t, smallScores[1], largeScores[1],
		"same post scores lower in a batch with a stronger max")
}

func TestTiers(t *testing.T) {
	t.Parallel()

	tiers := Tiers(map[uint]float64{
		1: 0.1,
		2: 0.32,
		3: 0.33,
		4: 0.5,
		5: 0.66,
		6: 0.9,
	})

	assert.Equal(t, models.EngagementTiers{Low: 2, Medium: 2, High: 2}, tiers)
}
