// Package rules evaluates measured values against externally supplied
// optimal ranges (soil pipeline) and fixed severity bands (disease pipeline)
// to produce ordered issue lists and severity classifications.
package rules

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tomatodiag/internal/model/entities"
)

// ErrMissingRange marks a required optimal-range entry that was not supplied
// with the request. Fatal: rule evaluation without it would be misleading.
var ErrMissingRange = errors.New("missing optimal range")

// requiredRanges must all be present before any soil rule runs.
var requiredRanges = []string{
	entities.ParamPH,
	entities.ParamTemperature,
	entities.ParamMoisture,
	entities.ParamNitrogen,
	entities.ParamPhosphorus,
	entities.ParamPotassium,
	entities.ParamMoistureThreshold,
}

// nutrientParams are the electrode-read parameters invalidated by dry soil.
var nutrientParams = map[string]bool{
	entities.ParamNitrogen:   true,
	entities.ParamPhosphorus: true,
	entities.ParamPotassium:  true,
}

// displayNames maps parameter keys to the names used in issue messages.
var displayNames = map[string]string{
	entities.ParamPH:          "Soil pH",
	entities.ParamTemperature: "Temperature",
	entities.ParamMoisture:    "Moisture",
	entities.ParamNitrogen:    "Nitrogen",
	entities.ParamPhosphorus:  "Phosphorus",
	entities.ParamPotassium:   "Potassium",
}

// canonicalOrder fixes the evaluation sequence of the known parameters so
// issue lists are deterministic regardless of map iteration order.
var canonicalOrder = []string{
	entities.ParamPH,
	entities.ParamTemperature,
	entities.ParamMoisture,
	entities.ParamNitrogen,
	entities.ParamPhosphorus,
	entities.ParamPotassium,
}

// ValidateRanges checks that every range consumed by rule evaluation was
// supplied. The error names the first missing field.
func ValidateRanges(cfg entities.RangeConfig) error {
	for _, p := range requiredRanges {
		if _, ok := cfg[p]; !ok {
			return fmt.Errorf("optimal range for %s not provided: %w", p, ErrMissingRange)
		}
	}
	return nil
}

// DrySoil reports whether the measured moisture is below the configured
// reliability threshold for nutrient electrode readings.
func DrySoil(data entities.MeasurementSet, cfg entities.RangeConfig) bool {
	return data[entities.ParamMoisture] < cfg[entities.ParamMoistureThreshold].Optimal.Min
}

// DetectSoilIssues compares every measured parameter against its optimal
// range. Dry soil gates the NPK checks: instead of range issues the nutrient
// parameters get a remeasure notice, because electrode readings in dry soil
// are not trustworthy. The returned list is never empty. ValidateRanges must
// have passed before calling.
func DetectSoilIssues(data entities.MeasurementSet, cfg entities.RangeConfig) []string {
	var issues []string

	dry := DrySoil(data, cfg)
	if dry {
		unit := cfg[entities.ParamMoisture].Unit
		issues = append(issues, fmt.Sprintf(
			"Soil is too dry for reliable NPK measurement (%s%s). Moisturize to at least %s%s before interpreting nutrient levels.",
			Num(data[entities.ParamMoisture]), unit,
			Num(cfg[entities.ParamMoistureThreshold].Optimal.Min), unit))
	}

	for _, param := range evaluationOrder(cfg) {
		value, measured := data[param]
		if !measured {
			continue
		}
		rng := cfg[param]

		display, ok := displayNames[param]
		if !ok {
			display = capitalize(param)
		}

		if dry && nutrientParams[param] {
			issues = append(issues, fmt.Sprintf(
				"%s reading (%s%s) may be inaccurate due to dry soil. Remeasure after moistening.",
				display, Num(value), rng.Unit))
			continue
		}

		switch {
		case value < rng.Optimal.Min:
			issues = append(issues, fmt.Sprintf(
				"%s is too low (%s%s) - optimal range: %s-%s%s",
				display, Num(value), rng.Unit,
				Num(rng.Optimal.Min), Num(rng.Optimal.Max), rng.Unit))
		case value > rng.Optimal.Max:
			issues = append(issues, fmt.Sprintf(
				"%s is too high (%s%s) - optimal range: %s-%s%s",
				display, Num(value), rng.Unit,
				Num(rng.Optimal.Min), Num(rng.Optimal.Max), rng.Unit))
		}
	}

	if len(issues) == 0 {
		issues = []string{"All soil parameters are within optimal ranges"}
	}
	return issues
}

// evaluationOrder returns the configured parameters in canonical order with
// unknown extras appended alphabetically. The threshold entry is a gate, not
// a measured parameter, and is excluded.
func evaluationOrder(cfg entities.RangeConfig) []string {
	seen := make(map[string]bool, len(canonicalOrder))
	order := make([]string, 0, len(cfg))
	for _, p := range canonicalOrder {
		seen[p] = true
		if _, ok := cfg[p]; ok {
			order = append(order, p)
		}
	}
	var extras []string
	for p := range cfg {
		if !seen[p] && p != entities.ParamMoistureThreshold {
			extras = append(extras, p)
		}
	}
	sort.Strings(extras)
	return append(order, extras...)
}

// Num formats a measurement without trailing zeros (5 not 5.000000).
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
