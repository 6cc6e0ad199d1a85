package rules

import (
	"testing"

	"tomatodiag/internal/model/entities"
)

func TestHealthStatusFor(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float64
		plant      entities.PlantType
		want       entities.HealthStatus
	}{
		{"healthy above threshold", "Tomato_healthy", 0.92, entities.PlantTomatoLeaf, entities.HealthHealthy},
		{"healthy at low confidence is not healthy", "Tomato_healthy", 0.65, entities.PlantTomatoLeaf, entities.HealthUnhealthy},
		{"early blight is moderate before critical", "Tomato_Early_blight", 0.8, entities.PlantTomatoLeaf, entities.HealthModerate},
		{"late blight is critical", "Tomato_Late_blight", 0.8, entities.PlantTomatoLeaf, entities.HealthCritical},
		{"spot keyword is moderate", "Tomato_Septoria_leaf_spot", 0.8, entities.PlantTomatoLeaf, entities.HealthModerate},
		{"rot keyword is critical", "Blossom_End_Rot", 0.8, entities.PlantTomatoFruit, entities.HealthCritical},
		{"no keyword falls through", "Catfacing", 0.8, entities.PlantTomatoFruit, entities.HealthUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthStatusFor(tt.label, tt.confidence, tt.plant)
			if got == nil {
				t.Fatalf("HealthStatusFor() = nil, want %q", tt.want)
			}
			if *got != tt.want {
				t.Errorf("HealthStatusFor(%q, %v) = %q, want %q", tt.label, tt.confidence, *got, tt.want)
			}
		})
	}

	for _, plant := range []entities.PlantType{entities.PlantNonTomatoLeaf, entities.PlantNonPlantObject, entities.PlantNonTomato} {
		if got := HealthStatusFor("Apple", 0.9, plant); got != nil {
			t.Errorf("HealthStatusFor for %q = %q, want nil", plant, *got)
		}
	}
}

func TestHealthScoreFor(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		confidence float64
		want       float64
	}{
		// 95 + (0.92-0.5)*30 = 107.6, clamped to 100
		{"healthy clamps at 100", "Tomato_healthy", 0.92, 100.0},
		// 70 + (0.8-0.5)*30 = 79
		{"early stage", "Tomato_Early_blight", 0.8, 79.0},
		// mold band before the critical scan: 55 + 9 = 64
		{"leaf mold uses mold band", "Tomato_Leaf_Mold", 0.8, 64.0},
		// 25 + (0.9-0.5)*30 = 37
		{"late blight", "Tomato_Late_blight", 0.9, 37.0},
		// unknown disease base 45 + 4.5 = 49.5
		{"unknown disease", "Tomato_Catfacing", 0.65, 49.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthScoreFor(tt.label, tt.confidence, entities.PlantTomatoLeaf)
			if got == nil {
				t.Fatalf("HealthScoreFor() = nil, want %v", tt.want)
			}
			if *got != tt.want {
				t.Errorf("HealthScoreFor(%q, %v) = %v, want %v", tt.label, tt.confidence, *got, tt.want)
			}
		})
	}

	if got := HealthScoreFor("Apple", 0.9, entities.PlantNonTomatoLeaf); got != nil {
		t.Errorf("HealthScoreFor for non-tomato = %v, want nil", *got)
	}
}
