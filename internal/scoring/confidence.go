package scoring

import "math"

// fullSampleSize is the post count at which sample-size confidence saturates.
const fullSampleSize = 50.0

// ConfidenceEstimator combines sample size and velocity stability into a
// [0,1] reliability indicator. Larger batches raise confidence; a wildly
// swinging velocity lowers it, since big swings usually reflect sparse data
// rather than a real trend.
type ConfidenceEstimator struct{}

// NewConfidenceEstimator returns a confidence estimator.
func NewConfidenceEstimator() *ConfidenceEstimator {
	return &ConfidenceEstimator{}
}

// Estimate returns the mean of the sample-size and velocity-stability terms.
func (e *ConfidenceEstimator) Estimate(postCount int, velocity float64) float64 {
	postConfidence := math.Min(float64(postCount)/fullSampleSize, 1.0)
	velocityConfidence := 1.0 - math.Min(math.Abs(velocity), 1.0)
	return (postConfidence + velocityConfidence) / 2
}
