package scoring

import (
	"testing"
	"time"

	"trendpulse/internal/models"

	"github.com/stretchr/testify/assert"
)

func metricAt(engagement float64, at time.Time) models.Metric {
	return models.Metric{Engagement: engagement, ComputedAt: at}
}

func TestVelocityEstimator_Estimate(t *testing.T) {
	t.Parallel()

	e := NewVelocityEstimator()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty history", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, e.Estimate(nil))
	})

	t.Run("single entry", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, e.Estimate([]models.Metric{metricAt(0.9, base)}))
	})

	t.Run("rising engagement is positive", func(t *testing.T) {
		t.Parallel()
		history := []models.Metric{
			metricAt(0.1, base),
			metricAt(0.2, base.Add(time.Hour)),
			metricAt(0.7, base.Add(2*time.Hour)),
			metricAt(0.9, base.Add(3*time.Hour)),
		}
		assert.Greater(t, e.Estimate(history), 0.0)
	})

	t.Run("falling engagement is negative", func(t *testing.T) {
		t.Parallel()
		history := []models.Metric{
			metricAt(0.9, base),
			metricAt(0.8, base.Add(time.Hour)),
			metricAt(0.2, base.Add(2*time.Hour)),
			metricAt(0.1, base.Add(3*time.Hour)),
		}
		assert.Less(t, e.Estimate(history), 0.0)
	})

	t.Run("flat engagement is zero", func(t *testing.T) {
		t.Parallel()
		history := []models.Metric{
			metricAt(0.5, base),
			metricAt(0.5, base.Add(time.Hour)),
			metricAt(0.5, base.Add(2*time.Hour)),
		}
		assert.InDelta(t, 0.0, e.Estimate(history), 1e-9)
	})

	t.Run("order independent", func(t *testing.T) {
		t.Parallel()
		ordered := []models.Metric{
			metricAt(0.1, base),
			metricAt(0.4, base.Add(time.Hour)),
			metricAt(0.8, base.Add(2*time.Hour)),
			metricAt(0.9, base.Add(3*time.Hour)),
		}
		shuffled := []models.Metric{ordered[2], ordered[0], ordered[3], ordered[1]}
		assert.InDelta(t, e.Estimate(ordered), e.Estimate(shuffled), 1e-9)
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		t.Parallel()
		history := []models.Metric{
			metricAt(0.9, base.Add(time.Hour)),
			metricAt(0.1, base),
		}
		e.Estimate(history)
		assert.Equal(t, 0.9, history[0].Engagement)
	})

	t.Run("exact two-point value", func(t *testing.T) {
		t.Parallel()
		// (0.7 - 0.3) / 2 * 100 = 20.
		history := []models.Metric{
			metricAt(0.3, base),
			metricAt(0.7, base.Add(time.Hour)),
		}
		assert.InDelta(t, 20.0, e.Estimate(history), 1e-9)
	})
}
