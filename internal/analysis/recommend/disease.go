package recommend

import (
	"fmt"

	"tomatodiag/internal/model/entities"
)

// maxDiseaseAdvice bounds every disease recommendation list.
const maxDiseaseAdvice = 6

// Disease selects the advice list for a diagnosis. Tomato categories get the
// per-disease table for their plant part (or generic treatment items naming
// an unmapped disease), then the good-practice items, truncated to the first
// six entries. Truncation happens after the append, so specific advice keeps
// priority over generic filler. Non-tomato categories get their fixed set.
func Disease(plant entities.PlantType, diseaseType *string, healthStatus *entities.HealthStatus) []string {
	var recs []string

	switch plant {
	case entities.PlantTomatoLeaf:
		recs = tomatoAdvice(leafDiseaseAdvice, leafMonitorAdvice, diseaseType, healthStatus,
			"Treat for %s immediately",
			"Remove affected plant parts",
			"Use appropriate treatment from agriculture store",
			"Improve overall plant health",
			"Monitor progress closely",
			"Consult agriculture expert for guidance")
	case entities.PlantTomatoFruit:
		recs = tomatoAdvice(fruitDiseaseAdvice, fruitMonitorAdvice, diseaseType, healthStatus,
			"Address %s promptly",
			"Remove affected fruits immediately",
			"Optimize growing conditions",
			"Monitor fruit development daily",
			"Apply suitable treatment",
			"Seek expert advice if needed")
	case entities.PlantNonTomatoLeaf:
		recs = append(recs, nonTomatoLeafAdvice...)
	case entities.PlantNonPlantObject:
		recs = append(recs, nonPlantAdvice...)
	default:
		recs = append(recs, nonTomatoGenericAdvice...)
	}

	if plant.IsTomato() {
		recs = append(recs, tomatoGoodPractice...)
	}

	if len(recs) > maxDiseaseAdvice {
		recs = recs[:maxDiseaseAdvice]
	}
	return recs
}

// tomatoAdvice picks the disease-specific list, falling back to generic
// treatment items that name the disease, or to monitoring advice when no
// diagnosis was resolved.
func tomatoAdvice(table map[string][]string, monitor []string, diseaseType *string, healthStatus *entities.HealthStatus, fallbackFmt string, fallbackRest ...string) []string {
	if diseaseType == nil || healthStatus == nil {
		return append([]string(nil), monitor...)
	}
	if advice, ok := table[*diseaseType]; ok {
		return append([]string(nil), advice...)
	}
	recs := []string{fmt.Sprintf(fallbackFmt, *diseaseType)}
	return append(recs, fallbackRest...)
}
