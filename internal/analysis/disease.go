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

// PlantClassifier is the trained image classification capability. Image
// loading and normalization happen behind this boundary.
type PlantClassifier interface {
	Classify(ctx context.Context, imagePath string) (entities.ImagePrediction, error)
}

// Diagnoser runs the disease pipeline for one image at a time. The class
// roster is explicit configuration; its length must match the classifier's
// output cardinality, which is validated at construction by the caller and
// re-checked against every probability vector.
type Diagnoser struct {
	model   PlantClassifier
	classes []string
}

func NewDiagnoser(model PlantClassifier, classes []string) (*Diagnoser, error) {
	if len(classes) == 0 {
		return nil, errors.New("diagnoser: empty class roster")
	}
	return &Diagnoser{model: model, classes: classes}, nil
}

// Classes returns the configured roster size, for startup validation against
// the model's reported output cardinality.
func (d *Diagnoser) Classes() int { return len(d.classes) }

// Diagnose classifies one image and assembles the full diagnosis record.
// Tomato-specific fields are computed only for tomato plant types; for every
// other category they stay nil rather than being computed and discarded.
func (d *Diagnoser) Diagnose(ctx context.Context, imagePath string) (*entities.Diagnosis, error) {
	pred, err := d.model.Classify(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("disease prediction: %w", err)
	}
	if len(pred.Probabilities) != len(d.classes) {
		return nil, fmt.Errorf("classifier returned %d probabilities for %d configured classes",
			len(pred.Probabilities), len(d.classes))
	}
	if pred.PredictedIndex < 0 || pred.PredictedIndex >= len(d.classes) {
		return nil, fmt.Errorf("predicted index %d out of range", pred.PredictedIndex)
	}

	label := d.classes[pred.PredictedIndex]
	plant := taxonomy.Resolve(label)

	confidence := calibration.BoostedConfidence(pred.Probabilities, func(i int) bool {
		return !taxonomy.Resolve(d.classes[i]).IsTomato()
	})

	diag := &entities.Diagnosis{
		PredictedClass: label,
		Confidence:     confidence,
		PlantType:      plant,
		IsTomato:       plant.IsTomato(),
		TomatoPart:     plant.Part(),
		TopPredictions: d.topPredictions(pred.Probabilities),
	}

	if diag.IsTomato {
		diag.HealthStatus = rules.HealthStatusFor(label, confidence, plant)
		diag.DiseaseType = taxonomy.DiseaseName(label, plant)
		diag.HealthScore = rules.HealthScoreFor(label, confidence, plant)
	}
	diag.Recommendations = recommend.Disease(plant, diag.DiseaseType, diag.HealthStatus)

	return diag, nil
}

// topPredictions exposes the raw top-3 probabilities alongside their labels.
func (d *Diagnoser) topPredictions(probs []float64) []entities.TopPrediction {
	top := calibration.TopIndices(probs, 3)
	out := make([]entities.TopPrediction, 0, len(top))
	for _, i := range top {
		out = append(out, entities.TopPrediction{
			Class:      d.classes[i],
			Confidence: probs[i],
		})
	}
	return out
}
