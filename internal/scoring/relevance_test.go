package scoring

import (
	"testing"

	"trendpulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevanceScorer_BatchProperties(t *testing.T) {
	t.Parallel()

	posts := []*models.Post{
		{ID: 1, Title: "neural networks", Content: "training neural networks with gradient descent"},
		{ID: 2, Title: "gradient descent", Content: "stochastic gradient descent convergence"},
		{ID: 3, Title: "cooking pasta", Content: "boil water add salt cook pasta"},
	}

	result := NewRelevanceScorer().Score(posts, 10)

	require.Len(t, result.Scores, 3, "one relevance value per post")
	maxScore := 0.0
	for id, v := range result.Scores {
		assert.GreaterOrEqual(t, v, 0.0, "post %d below range", id)
		assert.LessOrEqual(t, v, 1.0, "post %d above range", id)
		if v > maxScore {
			maxScore = v
		}
	}
	assert.InDelta(t, 1.0, maxScore, 1e-9, "batch top contributor normalizes to 1.0")
}

func TestRelevanceScorer_DegenerateBatches(t *testing.T) {
	t.Parallel()

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()
		result := NewRelevanceScorer().Score(nil, 10)
		assert.Empty(t, result.Scores)
		assert.Empty(t, result.TopTerms)
	})

	t.Run("single post", func(t *testing.T) {
		t.Parallel()
		posts := []*models.Post{{ID: 7, Title: "solo", Content: "only one document here"}}
		result := NewRelevanceScorer().Score(posts, 10)
		require.Contains(t, result.Scores, uint(7))
		// Every term in a 1-document corpus exceeds the 80% DF ceiling.
		assert.Equal(t, 0.0, result.Scores[7])
	})

	t.Run("posts with empty text", func(t *testing.T) {
		t.Parallel()
		posts := []*models.Post{{ID: 1, Title: "x"}, {ID: 2, Title: "topic words here"}}
		result := NewRelevanceScorer().Score(posts, 10)
		assert.Len(t, result.Scores, 2)
	})
}

func TestRelevanceScorer_Deterministic(t *testing.T) {
	t.Parallel()

	posts := []*models.Post{
		{ID: 1, Title: "rust memory safety", Content: "borrow checker ownership"},
		{ID: 2, Title: "go concurrency", Content: "goroutines channels select"},
		{ID: 3, Title: "rust async", Content: "tokio async await runtime"},
	}

	first := NewRelevanceScorer().Score(posts, 5)
	second := NewRelevanceScorer().Score(posts, 5)

	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.TopTerms, second.TopTerms)
}

func TestRelevanceScorer_TopTerms(t *testing.T) {
	t.Parallel()

	posts := []*models.Post{
		{ID: 1, Title: "quantum computing hardware", Content: "qubits decoherence"},
		{ID: 2, Title: "quantum algorithms", Content: "shor factoring speedup"},
		{ID: 3, Title: "classical baking", Content: "flour sugar butter"},
	}

	result := NewRelevanceScorer().Score(posts, 3)

	require.NotEmpty(t, result.TopTerms)
	assert.LessOrEqual(t, len(result.TopTerms), 3)
	for i := 1; i < len(result.TopTerms); i++ {
		assert.GreaterOrEqual(t, result.TopTerms[i-1].Score, result.TopTerms[i].Score,
			"top terms must be sorted descending")
	}
}

func TestExtractTerms(t *testing.T) {
	t.Parallel()

	terms := extractTerms("The quick brown fox and the lazy dog")

	assert.Contains(t, terms, "quick")
	assert.Contains(t, terms, "quick brown")
	assert.NotContains(t, terms, "the", "stop words removed")
	assert.NotContains(t, terms, "and")
}
