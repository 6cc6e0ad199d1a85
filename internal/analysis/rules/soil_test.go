package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tomatodiag/internal/model/entities"
)

func testRanges() entities.RangeConfig {
	return entities.RangeConfig{
		entities.ParamPH:                {Optimal: entities.Range{Min: 6.0, Max: 6.8}, Unit: "pH"},
		entities.ParamTemperature:       {Optimal: entities.Range{Min: 18, Max: 24}, Unit: "°C"},
		entities.ParamMoisture:          {Optimal: entities.Range{Min: 20, Max: 60}, Unit: "%"},
		entities.ParamNitrogen:          {Optimal: entities.Range{Min: 30, Max: 60}, Unit: "ppm"},
		entities.ParamPhosphorus:        {Optimal: entities.Range{Min: 15, Max: 40}, Unit: "ppm"},
		entities.ParamPotassium:         {Optimal: entities.Range{Min: 25, Max: 50}, Unit: "ppm"},
		entities.ParamMoistureThreshold: {Optimal: entities.Range{Min: 20, Max: 60}, Unit: "%"},
	}
}

func inRangeData() entities.MeasurementSet {
	return entities.MeasurementSet{
		entities.ParamPH:          6.4,
		entities.ParamTemperature: 22,
		entities.ParamMoisture:    35,
		entities.ParamNitrogen:    40,
		entities.ParamPhosphorus:  20,
		entities.ParamPotassium:   30,
	}
}

func TestValidateRanges(t *testing.T) {
	if err := ValidateRanges(testRanges()); err != nil {
		t.Fatalf("ValidateRanges(complete) = %v", err)
	}

	cfg := testRanges()
	delete(cfg, entities.ParamMoistureThreshold)
	err := ValidateRanges(cfg)
	if !errors.Is(err, ErrMissingRange) {
		t.Fatalf("error = %v, want ErrMissingRange", err)
	}
	if !strings.Contains(err.Error(), "moisture_threshold") {
		t.Errorf("error %q should name the missing field", err)
	}
}

func TestDetectSoilIssuesAllInRange(t *testing.T) {
	got := DetectSoilIssues(inRangeData(), testRanges())
	want := []string{"All soil parameters are within optimal ranges"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectSoilIssuesOutOfRange(t *testing.T) {
	data := inRangeData()
	data[entities.ParamPH] = 5.0
	data[entities.ParamTemperature] = 30

	got := DetectSoilIssues(data, testRanges())
	want := []string{
		"Soil pH is too low (5pH) - optimal range: 6-6.8pH",
		"Temperature is too high (30°C) - optimal range: 18-24°C",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectSoilIssuesDrySoilGatekeeper(t *testing.T) {
	data := inRangeData()
	data[entities.ParamMoisture] = 10
	// out-of-range nutrients must NOT produce range issues while soil is dry
	data[entities.ParamNitrogen] = 5
	data[entities.ParamPotassium] = 90

	got := DetectSoilIssues(data, testRanges())

	if len(got) != 5 {
		t.Fatalf("issue count = %d, want 5 (dry soil + moisture range + 3 NPK notices): %v", len(got), got)
	}
	if !strings.Contains(got[0], "too dry for reliable NPK measurement") {
		t.Errorf("first issue %q should be the dry-soil issue", got[0])
	}
	var notices, rangeIssues int
	for _, issue := range got[1:] {
		switch {
		case strings.Contains(issue, "may be inaccurate due to dry soil"):
			notices++
		case strings.Contains(issue, "Moisture is too low"):
			rangeIssues++
		default:
			t.Errorf("unexpected issue while soil is dry: %q", issue)
		}
	}
	if notices != 3 {
		t.Errorf("NPK notices = %d, want 3", notices)
	}
	if rangeIssues != 1 {
		t.Errorf("moisture range issues = %d, want 1", rangeIssues)
	}
}

func TestDetectSoilIssuesDeterministicOrder(t *testing.T) {
	data := inRangeData()
	data[entities.ParamPH] = 5.0
	data[entities.ParamPotassium] = 90
	data["salinity"] = 12
	cfg := testRanges()
	cfg["salinity"] = entities.ParameterRange{Optimal: entities.Range{Min: 0, Max: 4}, Unit: "dS/m"}

	want := DetectSoilIssues(data, cfg)
	for i := 0; i < 20; i++ {
		got := DetectSoilIssues(data, cfg)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("issue order not deterministic (-first +now):\n%s", diff)
		}
	}
	last := want[len(want)-1]
	if !strings.Contains(last, "Salinity is too high") {
		t.Errorf("extra parameters should evaluate after canonical ones, got %q last", last)
	}
}
