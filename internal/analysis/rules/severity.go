package rules

import (
	"math"
	"strings"

	"tomatodiag/internal/model/entities"
)

// Severity keyword bands. Evaluation is first-match-wins in the order the
// bands are declared; the healthy check precedes the keyword scans.
var (
	moderateKeywords = []string{"early", "mild", "minor", "spot"}
	criticalKeywords = []string{"late", "severe", "rot", "blight", "mosaic"}
)

// Health score base bands, evaluated in order.
var scoreBands = []struct {
	keywords []string
	base     float64
}{
	{[]string{"healthy"}, 95},
	{[]string{"early", "mild", "minor"}, 70},
	{[]string{"spot", "mold"}, 55},
	{[]string{"late", "severe", "rot", "blight", "mosaic"}, 25},
}

const unknownDiseaseBase = 45

// HealthStatusFor bands the diagnosed condition of a tomato plant. Non-tomato
// categories have no health status: the result is nil, not a default.
func HealthStatusFor(label string, confidence float64, plant entities.PlantType) *entities.HealthStatus {
	if !plant.IsTomato() {
		return nil
	}
	lower := strings.ToLower(label)

	status := entities.HealthUnhealthy
	switch {
	case strings.Contains(lower, "healthy") && confidence > 0.7:
		status = entities.HealthHealthy
	case containsAny(lower, moderateKeywords):
		status = entities.HealthModerate
	case containsAny(lower, criticalKeywords):
		status = entities.HealthCritical
	}
	return &status
}

// HealthScoreFor computes the 0-100 plant health score for tomato plants:
// a keyword-banded base adjusted linearly by confidence, clamped and rounded
// to one decimal. Nil for non-tomato categories.
func HealthScoreFor(label string, confidence float64, plant entities.PlantType) *float64 {
	if !plant.IsTomato() {
		return nil
	}
	lower := strings.ToLower(label)

	base := float64(unknownDiseaseBase)
	for _, band := range scoreBands {
		if containsAny(lower, band.keywords) {
			base = band.base
			break
		}
	}

	score := base + (confidence-0.5)*30
	score = math.Max(0, math.Min(100, score))
	score = math.Round(score*10) / 10
	return &score
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
