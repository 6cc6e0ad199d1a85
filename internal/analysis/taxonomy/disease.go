package taxonomy

import (
	"strings"

	"tomatodiag/internal/model/entities"
)

// displayNames maps normalized disease labels to their display names.
var displayNames = map[string]string{
	"bacterial_spot":        "Bacterial Spot",
	"early_blight":          "Early Blight",
	"late_blight":           "Late Blight",
	"leaf_mold":             "Leaf Mold",
	"septoria_leaf_spot":    "Septoria Leaf Spot",
	"spider_mites_two_spotted_spider_mite": "Spider Mites",
	"target_spot":           "Target Spot",
	"yellowleaf_curl_virus": "Yellow Leaf Curl Virus",
	"mosaic_virus":          "Mosaic Virus",
	"anthracnose":           "Anthracnose",
	"blossom_end_rot":       "Blossom End Rot",
	"buckeye_rot":           "Buckeye Rot",
	"gray_mold":             "Gray Mold",
	"white_mold":            "White Mold",
	"cracking":              "Fruit Cracking",
	"catfacing":             "Catfacing",
	"sunscald":              "Sunscald",
	"healthy":               "Healthy",
}

// DiseaseName extracts the display disease name from a raw class label.
// It applies only to tomato categories and returns nil otherwise; unmapped
// names pass through with the Tomato prefix stripped.
func DiseaseName(label string, plant entities.PlantType) *string {
	if !plant.IsTomato() {
		return nil
	}
	stripped := stripTomatoPrefix(label)
	if display, ok := displayNames[normalizeLabel(stripped)]; ok {
		return &display
	}
	return &stripped
}

func stripTomatoPrefix(label string) string {
	for {
		switch {
		case strings.HasPrefix(label, "Tomato__"):
			label = strings.TrimPrefix(label, "Tomato__")
		case strings.HasPrefix(label, "Tomato_"):
			label = strings.TrimPrefix(label, "Tomato_")
		default:
			return label
		}
	}
}
