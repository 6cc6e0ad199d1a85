// Package taxonomy maps raw model outputs into the small set of domain
// categories the rest of the decision layer works with: plant types for the
// classifier and quality bands for the soil regressor.
package taxonomy

import (
	"strings"

	"tomatodiag/internal/model/entities"
)

// rosterEntry is one (substring, category) pair. Resolution walks the roster
// in order and the first containment match wins; the fixed precedence keeps
// resolution deterministic even if the rosters are edited carelessly.
type rosterEntry struct {
	substr string
	plant  entities.PlantType
}

// Rosters follow the class folder names of the training set. Precedence:
// tomato leaf, tomato fruit, other plant leaf, non-plant object.
var roster = []rosterEntry{
	// tomato leaf diseases and healthy tomato leaf
	{"tomato_bacterial_spot", entities.PlantTomatoLeaf},
	{"tomato_early_blight", entities.PlantTomatoLeaf},
	{"tomato_late_blight", entities.PlantTomatoLeaf},
	{"tomato_leaf_mold", entities.PlantTomatoLeaf},
	{"tomato_septoria_leaf_spot", entities.PlantTomatoLeaf},
	{"tomato_spider_mites", entities.PlantTomatoLeaf},
	{"tomato_target_spot", entities.PlantTomatoLeaf},
	{"tomato_yellowleaf_curl_virus", entities.PlantTomatoLeaf},
	{"tomato_mosaic_virus", entities.PlantTomatoLeaf},
	{"tomato_healthy", entities.PlantTomatoLeaf},

	// tomato fruit diseases
	{"anthracnose", entities.PlantTomatoFruit},
	{"bacterial_spot", entities.PlantTomatoFruit},
	{"blossom_end_rot", entities.PlantTomatoFruit},
	{"buckeye_rot", entities.PlantTomatoFruit},
	{"catfacing", entities.PlantTomatoFruit},
	{"cracking", entities.PlantTomatoFruit},
	{"gray_mold", entities.PlantTomatoFruit},
	{"white_mold", entities.PlantTomatoFruit},
	{"sunscald", entities.PlantTomatoFruit},

	// other plants that have leaves
	{"apple", entities.PlantNonTomatoLeaf},
	{"banana", entities.PlantNonTomatoLeaf},
	{"grapes", entities.PlantNonTomatoLeaf},
	{"orange", entities.PlantNonTomatoLeaf},
	{"strawberry", entities.PlantNonTomatoLeaf},

	// non-plant objects
	{"human_hands", entities.PlantNonPlantObject},
	{"happiness", entities.PlantNonPlantObject},
}

// normalizeLabel lowercases a raw class label and collapses underscore runs
// so dataset folder names like "Tomato__Target_Spot" match the rosters.
func normalizeLabel(label string) string {
	s := strings.ToLower(label)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

// Resolve maps a raw class label to its plant type. Labels matching no
// roster entry resolve to the generic non-tomato category.
func Resolve(label string) entities.PlantType {
	norm := normalizeLabel(label)
	for _, e := range roster {
		if strings.Contains(norm, e.substr) {
			return e.plant
		}
	}
	return entities.PlantNonTomato
}

// SoilStatusFor bands the regressor quality score.
func SoilStatusFor(score float64) entities.SoilStatus {
	switch {
	case score >= 90:
		return entities.SoilExcellent
	case score >= 80:
		return entities.SoilGood
	case score >= 60:
		return entities.SoilAverage
	case score >= 40:
		return entities.SoilPoor
	default:
		return entities.SoilVeryPoor
	}
}
