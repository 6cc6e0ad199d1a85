package taxonomy

import (
	"testing"

	"tomatodiag/internal/model/entities"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		label string
		want  entities.PlantType
	}{
		{"Tomato_healthy", entities.PlantTomatoLeaf},
		{"Tomato_Early_blight", entities.PlantTomatoLeaf},
		{"Tomato_Septoria_leaf_spot", entities.PlantTomatoLeaf},
		// leaf precedence: contains bacterial_spot too, but the leaf roster wins
		{"Tomato_Bacterial_spot", entities.PlantTomatoLeaf},
		// double underscores in dataset folder names still resolve
		{"Tomato__Target_Spot", entities.PlantTomatoLeaf},
		{"Tomato__Tomato_YellowLeaf__Curl_Virus", entities.PlantTomatoLeaf},
		{"Tomato_Spider_mites_Two_spotted_spider_mite", entities.PlantTomatoLeaf},
		{"Blossom_End_Rot", entities.PlantTomatoFruit},
		{"Bacterial_Spot", entities.PlantTomatoFruit},
		{"Gray_Mold", entities.PlantTomatoFruit},
		{"Sunscald", entities.PlantTomatoFruit},
		{"Apple", entities.PlantNonTomatoLeaf},
		{"Strawberry", entities.PlantNonTomatoLeaf},
		{"Human_Hands", entities.PlantNonPlantObject},
		{"happiness", entities.PlantNonPlantObject},
		{"Cucumber", entities.PlantNonTomato},
		{"", entities.PlantNonTomato},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Resolve(tt.label); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestPlantTypeDerivations(t *testing.T) {
	if !entities.PlantTomatoLeaf.IsTomato() || !entities.PlantTomatoFruit.IsTomato() {
		t.Error("tomato plant types must report IsTomato")
	}
	for _, p := range []entities.PlantType{entities.PlantNonTomatoLeaf, entities.PlantNonPlantObject, entities.PlantNonTomato} {
		if p.IsTomato() {
			t.Errorf("%q must not report IsTomato", p)
		}
		if p.Part() != nil {
			t.Errorf("%q must have no tomato part", p)
		}
	}
	if got := entities.PlantTomatoLeaf.Part(); got == nil || *got != entities.PartLeaf {
		t.Errorf("leaf part = %v, want Leaf", got)
	}
	if got := entities.PlantTomatoFruit.Part(); got == nil || *got != entities.PartFruit {
		t.Errorf("fruit part = %v, want Fruit", got)
	}
}

func TestDiseaseName(t *testing.T) {
	tests := []struct {
		name  string
		label string
		plant entities.PlantType
		want  string
	}{
		{"healthy leaf", "Tomato_healthy", entities.PlantTomatoLeaf, "Healthy"},
		{"mapped leaf disease", "Tomato_Septoria_leaf_spot", entities.PlantTomatoLeaf, "Septoria Leaf Spot"},
		{"double underscore prefix", "Tomato__Target_Spot", entities.PlantTomatoLeaf, "Target Spot"},
		{"long spider mites label", "Tomato_Spider_mites_Two_spotted_spider_mite", entities.PlantTomatoLeaf, "Spider Mites"},
		{"fruit disease without prefix", "Blossom_End_Rot", entities.PlantTomatoFruit, "Blossom End Rot"},
		{"cracking display name", "Cracking", entities.PlantTomatoFruit, "Fruit Cracking"},
		{"unmapped passes through stripped", "Tomato_Frogeye", entities.PlantTomatoLeaf, "Frogeye"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiseaseName(tt.label, tt.plant)
			if got == nil {
				t.Fatalf("DiseaseName(%q) = nil, want %q", tt.label, tt.want)
			}
			if *got != tt.want {
				t.Errorf("DiseaseName(%q) = %q, want %q", tt.label, *got, tt.want)
			}
		})
	}

	if got := DiseaseName("Apple", entities.PlantNonTomatoLeaf); got != nil {
		t.Errorf("DiseaseName for non-tomato = %q, want nil", *got)
	}
}

func TestSoilStatusFor(t *testing.T) {
	tests := []struct {
		score float64
		want  entities.SoilStatus
	}{
		{95, entities.SoilExcellent},
		{90, entities.SoilExcellent},
		{89.9, entities.SoilGood},
		{80, entities.SoilGood},
		{79.9, entities.SoilAverage},
		{60, entities.SoilAverage},
		{59.9, entities.SoilPoor},
		{40, entities.SoilPoor},
		{39.9, entities.SoilVeryPoor},
		{0, entities.SoilVeryPoor},
	}
	for _, tt := range tests {
		if got := SoilStatusFor(tt.score); got != tt.want {
			t.Errorf("SoilStatusFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
