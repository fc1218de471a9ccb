package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentScorer_Score(t *testing.T) {
	t.Parallel()

	s := NewSentimentScorer()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"purely positive", "this is amazing, great work", 1.0},
		{"purely negative", "terrible bug, awful crash", -1.0},
		{"mixed leans positive", "great great idea but a slow rollout", 1.0 / 3.0},
		{"balanced", "love it, hate it", 0.0},
		{"no lexicon words", "the quarterly report was published today", 0.0},
		{"empty text", "", 0.0},
		{"case insensitive", "AMAZING and Awful", 0.0},
		{"punctuation stripped", "broken! broken? broken.", -1.0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, s.Score(tt.text), 1e-9)
		})
	}
}

func TestSentimentScorer_Bounds(t *testing.T) {
	t.Parallel()

	s := NewSentimentScorer()
	texts := []string{
		"great terrible great terrible great",
		"useless useless wonderful",
		"no opinion here at all",
	}
	for _, text := range texts {
		v := s.Score(text)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
