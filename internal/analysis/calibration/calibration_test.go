package calibration

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnsembleConfidence(t *testing.T) {
	tests := []struct {
		name      string
		estimates []float64
		want      float64
	}{
		{"zero variance is maximal confidence", []float64{82.5, 82.5, 82.5}, 1.0},
		{"single estimator", []float64{70}, 1.0},
		{"cv from spread", []float64{80, 120}, 1.0 / 1.2}, // mean 100, std 20, cv 0.2
		{"zero mean falls back to std", []float64{-1, 1}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EnsembleConfidence(tt.estimates)
			if err != nil {
				t.Fatalf("EnsembleConfidence() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EnsembleConfidence(%v) = %v, want %v", tt.estimates, got, tt.want)
			}
		})
	}
}

func TestEnsembleConfidenceNotEnsemble(t *testing.T) {
	_, err := EnsembleConfidence(nil)
	if !errors.Is(err, ErrNotEnsemble) {
		t.Fatalf("error = %v, want ErrNotEnsemble", err)
	}
	if !strings.Contains(err.Error(), "cannot calculate confidence") {
		t.Errorf("error %q should carry the calibration prefix", err)
	}
}

func TestTopIndices(t *testing.T) {
	probs := []float64{0.1, 0.5, 0.3, 0.1}
	got := TopIndices(probs, 3)
	want := []int{1, 2, 0} // tie between index 0 and 3 keeps the lower index
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TopIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestBoostedConfidenceTiers(t *testing.T) {
	tests := []struct {
		name  string
		probs []float64
		want  float64
	}{
		// p1 0.92, gap 0.87: strongest tier, 0.92*1.4 capped at 0.98
		{"very clear prediction capped", []float64{0.92, 0.05, 0.03}, 0.98},
		// p1 0.75, gap 0.55: second tier, 0.75*1.3 = 0.975 capped at 0.95
		{"clear prediction capped", []float64{0.75, 0.20, 0.05}, 0.95},
		// p1 0.65, gap 0.35: third tier, 0.65*1.2 = 0.78 under the 0.90 cap
		{"moderate prediction boosted", []float64{0.65, 0.30, 0.05}, 0.78},
		// p1 0.40, gap 0.05: weak tier, 0.40*1.1 = 0.44
		{"weak prediction minimal boost", []float64{0.40, 0.35, 0.25}, 0.44},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoostedConfidence(tt.probs, nil)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("BoostedConfidence(%v) = %v, want %v", tt.probs, got, tt.want)
			}
		})
	}
}

func TestBoostedConfidenceNeverBelowRaw(t *testing.T) {
	// High top-1 with a narrow gap lands in the weak tier whose 0.85 ceiling
	// sits below the raw probability; calibration must not lower it.
	probs := []float64{0.90, 0.88, 0.01}
	if got := BoostedConfidence(probs, nil); got < 0.90 {
		t.Errorf("BoostedConfidence = %v, below raw top-1 0.90", got)
	}

	for p1 := 0.05; p1 <= 1.0; p1 += 0.05 {
		rest := (1 - p1) / 2
		probs := []float64{p1, rest, rest}
		if got := BoostedConfidence(probs, nil); got < p1-1e-12 {
			t.Errorf("BoostedConfidence(%v) = %v, below raw top-1 %v", probs, got, p1)
		}
	}
}

func TestBoostedConfidenceOffTargetAgreement(t *testing.T) {
	probs := []float64{0.60, 0.30, 0.10}
	allOff := func(int) bool { return true }
	// weak tier: min(0.85, 0.66) = 0.66, then min(0.97, 0.66*1.15) = 0.759
	got := BoostedConfidence(probs, allOff)
	if math.Abs(got-0.759) > 1e-12 {
		t.Errorf("BoostedConfidence = %v, want 0.759", got)
	}

	// extra boost requires agreement across the whole top-3
	someOn := func(i int) bool { return i != 1 }
	got = BoostedConfidence(probs, someOn)
	if math.Abs(got-0.66) > 1e-12 {
		t.Errorf("BoostedConfidence = %v, want 0.66 without full agreement", got)
	}
}
