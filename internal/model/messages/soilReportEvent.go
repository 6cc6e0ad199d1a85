package messages

import (
	"time"

	"tomatodiag/internal/model/entities"
)

// SoilReportEvent is published after a completed soil analysis to record
// WHAT was diagnosed and with which confidence.
type SoilReportEvent struct {
	ReportID        string              `json:"report_id"`
	FieldID         string              `json:"field_id,omitempty"`
	SensorID        string              `json:"sensor_id,omitempty"`
	Status          entities.SoilStatus `json:"soil_status"`
	QualityScore    float64             `json:"soil_quality_score"`
	Confidence      float64             `json:"confidence_score"`
	Issues          []string            `json:"soil_issues"`
	Recommendations []string            `json:"recommendations"`
	Timestamp       time.Time           `json:"timestamp"`
}
