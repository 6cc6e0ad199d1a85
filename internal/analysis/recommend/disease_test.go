package recommend

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tomatodiag/internal/model/entities"
)

func strPtr(s string) *string { return &s }

func statusPtr(s entities.HealthStatus) *entities.HealthStatus { return &s }

func TestDiseaseKnownLeafDisease(t *testing.T) {
	recs := Disease(entities.PlantTomatoLeaf, strPtr("Bacterial Spot"), statusPtr(entities.HealthModerate))
	if diff := cmp.Diff(leafDiseaseAdvice["Bacterial Spot"], recs); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestDiseaseKnownFruitDisease(t *testing.T) {
	recs := Disease(entities.PlantTomatoFruit, strPtr("Blossom End Rot"), statusPtr(entities.HealthCritical))
	if diff := cmp.Diff(fruitDiseaseAdvice["Blossom End Rot"], recs); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestDiseaseUnmappedFallsBackToGenericTreatment(t *testing.T) {
	recs := Disease(entities.PlantTomatoLeaf, strPtr("Powdery Mildew"), statusPtr(entities.HealthUnhealthy))
	want := []string{
		"Treat for Powdery Mildew immediately",
		"Remove affected plant parts",
		"Use appropriate treatment from agriculture store",
		"Improve overall plant health",
		"Monitor progress closely",
		"Consult agriculture expert for guidance",
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestDiseaseUnresolvedDiagnosisGetsMonitorAdvice(t *testing.T) {
	recs := Disease(entities.PlantTomatoFruit, nil, nil)
	if diff := cmp.Diff(fruitMonitorAdvice, recs); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestDiseaseNonTomatoCategories(t *testing.T) {
	tests := []struct {
		plant entities.PlantType
		want  []string
	}{
		{entities.PlantNonTomatoLeaf, nonTomatoLeafAdvice},
		{entities.PlantNonPlantObject, nonPlantAdvice},
		{entities.PlantNonTomato, nonTomatoGenericAdvice},
	}
	for _, tt := range tests {
		t.Run(string(tt.plant), func(t *testing.T) {
			recs := Disease(tt.plant, nil, nil)
			if diff := cmp.Diff(tt.want, recs); diff != "" {
				t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiseaseListNeverExceedsSix(t *testing.T) {
	plants := []entities.PlantType{
		entities.PlantTomatoLeaf, entities.PlantTomatoFruit,
		entities.PlantNonTomatoLeaf, entities.PlantNonPlantObject, entities.PlantNonTomato,
	}
	for _, p := range plants {
		for _, dt := range []*string{nil, strPtr("Late Blight"), strPtr("Nothing Known")} {
			if got := Disease(p, dt, statusPtr(entities.HealthModerate)); len(got) > maxDiseaseAdvice {
				t.Errorf("Disease(%s, %v) returned %d items", p, dt, len(got))
			}
		}
	}
}
