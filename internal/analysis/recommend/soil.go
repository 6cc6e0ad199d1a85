// Package recommend converts resolved categories and detected issues into
// priority-ordered, size-bounded lists of actions a grower can take.
package recommend

import (
	"fmt"
	"strings"

	"tomatodiag/internal/analysis/rules"
	"tomatodiag/internal/model/entities"
)

// drySoilMarker identifies the urgent remeasure recommendation so it can be
// hoisted to the front of the list.
const drySoilMarker = "dry for NPK"

// genericSoilAdvice substitutes when no corrective action was produced.
var genericSoilAdvice = []string{
	"Soil conditions are good for tomato growth",
	"Continue regular monitoring",
	"Apply fertilizer according to plant growth stage",
}

// Soil synthesizes corrective recommendations for a measurement set, in a
// fixed order: moisture gatekeeper, pH, temperature, moisture, nutrients.
// pH is always evaluated because it affects nutrient availability regardless
// of moisture; nutrient dosing is suppressed when soil is too dry for NPK
// readings or replaced by a fix-pH-first directive when pH is out of range.
// The urgent dry-soil message is hoisted to the front of the final list.
func Soil(data entities.MeasurementSet, cfg entities.RangeConfig) ([]string, error) {
	if err := rules.ValidateRanges(cfg); err != nil {
		return nil, err
	}

	var recs []string

	ph := data[entities.ParamPH]
	temp := data[entities.ParamTemperature]
	moisture := data[entities.ParamMoisture]
	nitrogen := data[entities.ParamNitrogen]
	phosphorus := data[entities.ParamPhosphorus]
	potassium := data[entities.ParamPotassium]

	phCfg := cfg[entities.ParamPH]
	tempCfg := cfg[entities.ParamTemperature]
	moistCfg := cfg[entities.ParamMoisture]
	nCfg := cfg[entities.ParamNitrogen]
	pCfg := cfg[entities.ParamPhosphorus]
	kCfg := cfg[entities.ParamPotassium]
	threshold := cfg[entities.ParamMoistureThreshold].Optimal.Min

	// moisture gatekeeper: dry soil invalidates the NPK electrode readings
	skipNPK := moisture < threshold
	if skipNPK {
		recs = append(recs, fmt.Sprintf(
			"URGENT: Soil too dry for NPK measurement - Moisturize soil to at least %s%s and retake readings. Current NPK values (%s/%s/%s ppm) may be inaccurate.",
			rules.Num(threshold), moistCfg.Unit,
			rules.Num(nitrogen), rules.Num(phosphorus), rules.Num(potassium)))
	}

	// pH first, always: it locks nutrients out independently of moisture
	switch {
	case ph < phCfg.Optimal.Min:
		recs = append(recs, fmt.Sprintf(
			"Apply agricultural lime to raise soil pH from %s%s to optimal %s-%s%s. Low pH locks out nutrients.",
			rules.Num(ph), phCfg.Unit,
			rules.Num(phCfg.Optimal.Min), rules.Num(phCfg.Optimal.Max), phCfg.Unit))
	case ph > phCfg.Optimal.Max:
		recs = append(recs, fmt.Sprintf(
			"Apply elemental sulfur to lower soil pH from %s%s to optimal %s-%s%s. High pH locks out nutrients.",
			rules.Num(ph), phCfg.Unit,
			rules.Num(phCfg.Optimal.Min), rules.Num(phCfg.Optimal.Max), phCfg.Unit))
	}

	switch {
	case temp < tempCfg.Optimal.Min:
		recs = append(recs, fmt.Sprintf(
			"Use row covers or black plastic mulch to increase soil temperature from %s%s to optimal %s-%s%s",
			rules.Num(temp), tempCfg.Unit,
			rules.Num(tempCfg.Optimal.Min), rules.Num(tempCfg.Optimal.Max), tempCfg.Unit))
	case temp > tempCfg.Optimal.Max:
		recs = append(recs, fmt.Sprintf(
			"Provide shade or use reflective mulch to reduce soil temperature from %s%s to optimal %s%s",
			rules.Num(temp), tempCfg.Unit,
			rules.Num(tempCfg.Optimal.Max), tempCfg.Unit))
	}

	if !skipNPK {
		switch {
		case moisture < moistCfg.Optimal.Min:
			recs = append(recs, fmt.Sprintf(
				"Increase watering frequency to raise moisture from %s%s to optimal %s-%s%s",
				rules.Num(moisture), moistCfg.Unit,
				rules.Num(moistCfg.Optimal.Min), rules.Num(moistCfg.Optimal.Max), moistCfg.Unit))
		case moisture > moistCfg.Optimal.Max:
			recs = append(recs, fmt.Sprintf(
				"Improve drainage to reduce moisture from %s%s to optimal %s%s",
				rules.Num(moisture), moistCfg.Unit,
				rules.Num(moistCfg.Optimal.Max), moistCfg.Unit))
		}
	}

	if !skipNPK {
		phProblem := ph < phCfg.Optimal.Min || ph > phCfg.Optimal.Max
		if phProblem {
			// dosing calculations assume correct pH; advice without it misleads
			recs = append(recs, fmt.Sprintf(
				"Fix pH before fertilizing - Current pH (%s%s) makes nutrients unavailable. Adjust pH to %s-%s%s first.",
				rules.Num(ph), phCfg.Unit,
				rules.Num(phCfg.Optimal.Min), rules.Num(phCfg.Optimal.Max), phCfg.Unit))
		} else {
			recs = append(recs, nutrientAdvice(nitrogen, nCfg,
				"Apply nitrogen-rich fertilizer (urea) - Estimated deficit: %.0f%s",
				"Reduce nitrogen - Current %s%s may cause excessive growth")...)
			recs = append(recs, nutrientAdvice(phosphorus, pCfg,
				"Apply phosphorus fertilizer (superphosphate) - Estimated deficit: %.0f%s",
				"Avoid additional phosphorus this season")...)
			recs = append(recs, nutrientAdvice(potassium, kCfg,
				"Apply potassium fertilizer (potassium sulfate) - Estimated deficit: %.0f%s",
				"Reduce potassium application")...)
		}
	}

	if len(recs) == 0 {
		recs = append(recs, genericSoilAdvice...)
	}

	return hoistDrySoil(recs), nil
}

// nutrientAdvice emits a deficit message below range or the excess message
// above it. Excess messages with a %s pair interpolate the current value.
func nutrientAdvice(value float64, cfg entities.ParameterRange, deficitFmt, excessFmt string) []string {
	switch {
	case value < cfg.Optimal.Min:
		deficit := cfg.Optimal.Min - value
		return []string{fmt.Sprintf(deficitFmt, deficit, cfg.Unit)}
	case value > cfg.Optimal.Max:
		if strings.Contains(excessFmt, "%s") {
			return []string{fmt.Sprintf(excessFmt, rules.Num(value), cfg.Unit)}
		}
		return []string{excessFmt}
	default:
		return nil
	}
}

// hoistDrySoil moves any dry-soil warning to the front of the list so the
// most urgent corrective action is always read first. Relative order is
// otherwise preserved.
func hoistDrySoil(recs []string) []string {
	var urgent, rest []string
	for _, r := range recs {
		if strings.Contains(r, drySoilMarker) {
			urgent = append(urgent, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(urgent, rest...)
}
