package app

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HandleAnalyzeSoil serves POST /analyze/soil. Every failure inside the
// request is converted here into the flat failure record.
func (g *Gateway) HandleAnalyzeSoil(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), g.cfg.RequestTimeout)
	defer cancel()

	var req SoilAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.fail(w, "soil", start, "invalid request body: "+err.Error())
		return
	}
	if len(req.SoilData) == 0 {
		g.fail(w, "soil", start, "no soil data provided")
		return
	}

	result, err := g.analyzer.Analyze(ctx, req.SoilData, req.OptimalRanges)
	if err != nil {
		g.fail(w, "soil", start, err.Error())
		return
	}

	g.publishSoilReport(result)

	writeJSON(w, http.StatusOK, SoilAnalyzeResponse{
		Success:         true,
		Status:          result.Status,
		QualityScore:    result.QualityScore,
		Confidence:      result.Confidence,
		Issues:          result.Issues,
		Recommendations: result.Recommendations,
	})
	g.metrics.observe("soil", true, time.Since(start).Seconds())
	g.cfg.Logger.Printf("gateway: POST /analyze/soil [%dms] status=%s score=%.1f conf=%.2f",
		time.Since(start).Milliseconds(), result.Status, result.QualityScore, result.Confidence)
}

// HandleDiagnosePlant serves POST /diagnose/plant.
func (g *Gateway) HandleDiagnosePlant(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), g.cfg.RequestTimeout)
	defer cancel()

	var req DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.fail(w, "disease", start, "invalid request body: "+err.Error())
		return
	}
	if req.ImagePath == "" {
		g.fail(w, "disease", start, "no image provided")
		return
	}

	diag, err := g.diagnoser.Diagnose(ctx, req.ImagePath)
	if err != nil {
		g.fail(w, "disease", start, err.Error())
		return
	}

	g.publishDiagnosisReport(req.ImagePath, diag)

	writeJSON(w, http.StatusOK, DiagnoseResponse{
		Success:         true,
		PredictedClass:  diag.PredictedClass,
		PlantType:       diag.PlantType,
		IsTomato:        diag.IsTomato,
		TomatoType:      diag.TomatoPart,
		HealthStatus:    diag.HealthStatus,
		DiseaseType:     diag.DiseaseType,
		HealthScore:     diag.HealthScore,
		Confidence:      diag.Confidence,
		Recommendations: diag.Recommendations,
		TopPredictions:  diag.TopPredictions,
	})
	g.metrics.observe("disease", true, time.Since(start).Seconds())
	g.cfg.Logger.Printf("gateway: POST /diagnose/plant [%dms] class=%s tomato=%v conf=%.2f",
		time.Since(start).Milliseconds(), diag.PredictedClass, diag.IsTomato, diag.Confidence)
}

// fail writes the flat failure record. The HTTP status stays 200: success is
// carried in the payload, not the transport.
func (g *Gateway) fail(w http.ResponseWriter, pipeline string, start time.Time, msg string) {
	writeJSON(w, http.StatusOK, FailureResponse{Success: false, Error: msg})
	g.metrics.observe(pipeline, false, time.Since(start).Seconds())
	g.cfg.Logger.Printf("gateway: %s pipeline failed: %s", pipeline, msg)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
