package inference

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"tomatodiag/internal/model/entities"
)

// Classifier calls the plant disease model service. It satisfies the
// decision layer's PlantClassifier interface.
type Classifier struct {
	base   string
	client *http.Client
	cb     *gobreaker.CircuitBreaker
}

func NewClassifier(base string, timeout time.Duration, cb *gobreaker.CircuitBreaker) *Classifier {
	return &Classifier{
		base:   trimBase(base),
		client: newHTTPClient(timeout),
		cb:     cb,
	}
}

type classifyRequest struct {
	ImagePath string `json:"image_path"`
}

type classifyResponse struct {
	Probabilities  []float64 `json:"probabilities"`
	PredictedIndex int       `json:"predicted_index"`
}

type metadataResponse struct {
	NumClasses int `json:"num_classes"`
}

// Classify returns the full probability vector for one image. Cardinality
// against the configured class roster is the caller's check.
func (c *Classifier) Classify(ctx context.Context, imagePath string) (entities.ImagePrediction, error) {
	res, err := c.cb.Execute(func() (any, error) {
		var out classifyResponse
		if err := postJSON(ctx, c.client, c.base+"/predict", classifyRequest{ImagePath: imagePath}, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return entities.ImagePrediction{}, fmt.Errorf("plant classifier: %w", err)
	}
	out := res.(classifyResponse)
	return entities.ImagePrediction{
		Probabilities:  out.Probabilities,
		PredictedIndex: out.PredictedIndex,
	}, nil
}

// NumClasses asks the model service for its output cardinality. Called once
// at startup to fail fast when the deployed model and the configured class
// roster disagree.
func (c *Classifier) NumClasses(ctx context.Context) (int, error) {
	var out metadataResponse
	if err := getJSON(ctx, c.client, c.base+"/metadata", &out); err != nil {
		return 0, fmt.Errorf("plant classifier metadata: %w", err)
	}
	return out.NumClasses, nil
}
