package inference

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Regressor calls the soil quality model service. It satisfies the decision
// layer's SoilModel interface; feature scaling is the service's concern.
type Regressor struct {
	base   string
	client *http.Client
	cb     *gobreaker.CircuitBreaker
}

func NewRegressor(base string, timeout time.Duration, cb *gobreaker.CircuitBreaker) *Regressor {
	return &Regressor{
		base:   trimBase(base),
		client: newHTTPClient(timeout),
		cb:     cb,
	}
}

type soilPredictRequest struct {
	Features []float64 `json:"features"`
}

type soilPredictResponse struct {
	Score           float64   `json:"score"`
	EstimatorScores []float64 `json:"estimator_scores"`
}

// Predict returns the quality score plus the per-estimator scores the
// calibration step needs. A model that reports no estimator scores is not an
// ensemble; the calibration layer turns that into its own error.
func (r *Regressor) Predict(ctx context.Context, features []float64) (float64, []float64, error) {
	res, err := r.cb.Execute(func() (any, error) {
		var out soilPredictResponse
		if err := postJSON(ctx, r.client, r.base+"/predict", soilPredictRequest{Features: features}, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("soil regressor: %w", err)
	}
	out := res.(soilPredictResponse)
	return out.Score, out.EstimatorScores, nil
}
