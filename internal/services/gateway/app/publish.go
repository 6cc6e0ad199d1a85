package app

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tomatodiag/internal/model/entities"
	"tomatodiag/internal/model/messages"
)

// publishSoilReport emits the report event for a completed soil analysis.
// Publishing is best-effort: a broker problem is logged, never surfaced to
// the caller whose analysis already succeeded.
func (g *Gateway) publishSoilReport(result *entities.SoilAnalysis) {
	if g.publisher == nil {
		return
	}
	evt := messages.SoilReportEvent{
		ReportID:        uuid.NewString(),
		Status:          result.Status,
		QualityScore:    result.QualityScore,
		Confidence:      result.Confidence,
		Issues:          result.Issues,
		Recommendations: result.Recommendations,
		Timestamp:       time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		g.cfg.Logger.Printf("gateway: encode soil report: %v", err)
		return
	}
	if err := g.publisher.PublishTo(g.cfg.SoilReportTopic, payload); err != nil {
		g.cfg.Logger.Printf("gateway: publish soil report: %v", err)
	}
}

// publishDiagnosisReport emits the report event for a completed diagnosis.
func (g *Gateway) publishDiagnosisReport(imageID string, diag *entities.Diagnosis) {
	if g.publisher == nil {
		return
	}
	evt := messages.DiagnosisReportEvent{
		ReportID:       uuid.NewString(),
		ImageID:        imageID,
		PredictedClass: diag.PredictedClass,
		PlantType:      diag.PlantType,
		IsTomato:       diag.IsTomato,
		HealthStatus:   diag.HealthStatus,
		DiseaseType:    diag.DiseaseType,
		HealthScore:    diag.HealthScore,
		Confidence:     diag.Confidence,
		Timestamp:      time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		g.cfg.Logger.Printf("gateway: encode diagnosis report: %v", err)
		return
	}
	if err := g.publisher.PublishTo(g.cfg.DiagnosisReportTopic, payload); err != nil {
		g.cfg.Logger.Printf("gateway: publish diagnosis report: %v", err)
	}
}
