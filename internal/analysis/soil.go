// Package analysis assembles the post-inference decision layer: calibrated
// confidence, taxonomy resolution, threshold rules and recommendations are
// combined into one immutable report per request. Model inference itself is
// an upstream collaborator consumed through small interfaces.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"tomatodiag/internal/analysis/calibration"
	"tomatodiag/internal/analysis/recommend"
	"tomatodiag/internal/analysis/rules"
	"tomatodiag/internal/analysis/taxonomy"
	"tomatodiag/internal/model/entities"
)

// ErrMissingField marks a soil parameter absent from the measurement set.
var ErrMissingField = errors.New("missing required field")

// soilFeatureOrder is the feature vector layout the regressor was trained
// with: Soil_pH, Temperature, Moisture, N, P, K.
var soilFeatureOrder = []string{
	entities.ParamPH,
	entities.ParamTemperature,
	entities.ParamMoisture,
	entities.ParamNitrogen,
	entities.ParamPhosphorus,
	entities.ParamPotassium,
}

// SoilModel is the trained regression capability: one quality score plus the
// per-estimator scores needed for ensemble-disagreement calibration. Feature
// scaling happens behind this boundary.
type SoilModel interface {
	Predict(ctx context.Context, features []float64) (score float64, estimates []float64, err error)
}

// SoilAnalyzer runs the soil pipeline end to end for one request at a time.
// It holds no per-request state and is safe for concurrent use.
type SoilAnalyzer struct {
	model SoilModel
}

func NewSoilAnalyzer(model SoilModel) *SoilAnalyzer {
	return &SoilAnalyzer{model: model}
}

// Analyze produces a complete soil report or fails as a whole: the optimal
// ranges are validated up front, the model is consulted once, and every
// downstream step works on the same immutable inputs.
func (a *SoilAnalyzer) Analyze(ctx context.Context, data entities.MeasurementSet, ranges entities.RangeConfig) (*entities.SoilAnalysis, error) {
	if err := rules.ValidateRanges(ranges); err != nil {
		return nil, err
	}

	features, err := FeatureVector(data)
	if err != nil {
		return nil, err
	}

	score, estimates, err := a.model.Predict(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("soil model prediction: %w", err)
	}

	confidence, err := calibration.EnsembleConfidence(estimates)
	if err != nil {
		return nil, err
	}

	recs, err := recommend.Soil(data, ranges)
	if err != nil {
		return nil, err
	}

	return &entities.SoilAnalysis{
		Status:          taxonomy.SoilStatusFor(score),
		QualityScore:    score,
		Confidence:      confidence,
		Issues:          rules.DetectSoilIssues(data, ranges),
		Recommendations: recs,
	}, nil
}

// FeatureVector maps a measurement set into the trained feature order,
// failing on the first absent parameter.
func FeatureVector(data entities.MeasurementSet) ([]float64, error) {
	features := make([]float64, 0, len(soilFeatureOrder))
	for _, param := range soilFeatureOrder {
		v, ok := data[param]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, param)
		}
		features = append(features, v)
	}
	return features, nil
}
