package messages

import (
	"time"

	"tomatodiag/internal/model/entities"
)

// DiagnosisReportEvent is published after a completed plant diagnosis.
// HealthStatus, DiseaseType and HealthScore are nil for non-tomato
// categories, mirroring the result record they were assembled from.
type DiagnosisReportEvent struct {
	ReportID       string                 `json:"report_id"`
	ImageID        string                 `json:"image_id,omitempty"`
	PredictedClass string                 `json:"predicted_class"`
	PlantType      entities.PlantType     `json:"plant_type"`
	IsTomato       bool                   `json:"is_tomato"`
	HealthStatus   *entities.HealthStatus `json:"health_status"`
	DiseaseType    *string                `json:"disease_type"`
	HealthScore    *float64               `json:"plant_health_score"`
	Confidence     float64                `json:"confidence_score"`
	Timestamp      time.Time              `json:"timestamp"`
}
