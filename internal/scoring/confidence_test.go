package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceEstimator_Estimate(t *testing.T) {
	t.Parallel()

	e := NewConfidenceEstimator()

	tests := []struct {
		name      string
		postCount int
		velocity  float64
		want      float64
	}{
		{"no posts, stable velocity", 0, 0, 0.5},
		{"saturated sample, stable velocity", 100, 0, 1.0},
		{"exact saturation point", 50, 0, 1.0},
		{"half sample, stable velocity", 25, 0, 0.75},
		{"no posts, saturated velocity", 0, 1.0, 0.0},
		{"negative velocity uses magnitude", 50, -0.5, 0.75},
		{"velocity magnitude clamped", 50, 40.0, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, e.Estimate(tt.postCount, tt.velocity), 1e-9)
		})
	}
}

func TestConfidenceEstimator_MonotonicInPostCount(t *testing.T) {
	t.Parallel()

	e := NewConfidenceEstimator()
	prev := -1.0
	for _, n := range []int{0, 1, 10, 25, 50, 500} {
		v := e.Estimate(n, 0.2)
		assert.GreaterOrEqual(t, v, prev, "post count %d", n)
		prev = v
	}
}
