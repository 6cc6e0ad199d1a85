package app

import (
	"tomatodiag/internal/model/entities"
)

// ---------- Request payloads ----------

type SoilAnalyzeRequest struct {
	SoilData      entities.MeasurementSet `json:"soil_data"`
	OptimalRanges entities.RangeConfig    `json:"optimal_ranges"`
}

type DiagnoseRequest struct {
	ImagePath string `json:"image_path"`
}

// ---------- Response payloads ----------

// FailureResponse is the only shape a failed request produces: no partial
// results ever leave the boundary.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type SoilAnalyzeResponse struct {
	Success         bool                `json:"success"`
	Status          entities.SoilStatus `json:"soil_status"`
	QualityScore    float64             `json:"soil_quality_score"`
	Confidence      float64             `json:"confidence_score"`
	Issues          []string            `json:"soil_issues"`
	Recommendations []string            `json:"recommendations"`
}

// DiagnoseResponse keeps the tomato-only fields as pointers without
// omitempty: non-tomato results serialize them as explicit nulls.
type DiagnoseResponse struct {
	Success         bool                     `json:"success"`
	PredictedClass  string                   `json:"predicted_class"`
	PlantType       entities.PlantType       `json:"plant_type"`
	IsTomato        bool                     `json:"is_tomato"`
	TomatoType      *entities.TomatoPart     `json:"tomato_type"`
	HealthStatus    *entities.HealthStatus   `json:"health_status"`
	DiseaseType     *string                  `json:"disease_type"`
	HealthScore     *float64                 `json:"plant_health_score"`
	Confidence      float64                  `json:"confidence_score"`
	Recommendations []string                 `json:"recommendations"`
	TopPredictions  []entities.TopPrediction `json:"top_predictions"`
}
