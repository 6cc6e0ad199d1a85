// Package calibration turns raw model scores into calibrated reliability
// measures. Two independent algorithms are provided: ensemble disagreement
// for the soil regressor and margin-based boosting for the image classifier.
package calibration

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNotEnsemble is returned when no per-estimator predictions are available,
// which makes disagreement-based calibration impossible.
var ErrNotEnsemble = errors.New("model exposes no per-estimator predictions")

// EnsembleConfidence derives a confidence in (0,1] from the spread of the
// per-estimator predictions of a regression ensemble. Zero disagreement is
// maximal confidence. The coefficient of variation is std/|mean|, degrading
// to the plain std when the mean is zero.
func EnsembleConfidence(estimates []float64) (float64, error) {
	if len(estimates) == 0 {
		return 0, fmt.Errorf("cannot calculate confidence: %w", ErrNotEnsemble)
	}

	var sum float64
	for _, v := range estimates {
		sum += v
	}
	mean := sum / float64(len(estimates))

	var sq float64
	for _, v := range estimates {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(estimates)))

	if std == 0 {
		return 1.0, nil
	}
	cv := std
	if mean != 0 {
		cv = std / math.Abs(mean)
	}
	return 1.0 / (1.0 + cv), nil
}

// boostTier is one row of the margin-boost table, ordered by descending
// strictness. The first tier whose thresholds are both exceeded wins.
type boostTier struct {
	minTop1    float64
	minGap     float64
	multiplier float64
	ceiling    float64
}

var boostTiers = []boostTier{
	{minTop1: 0.8, minGap: 0.3, multiplier: 1.4, ceiling: 0.98},
	{minTop1: 0.7, minGap: 0.2, multiplier: 1.3, ceiling: 0.95},
	{minTop1: 0.6, minGap: 0.15, multiplier: 1.2, ceiling: 0.90},
}

// fallback tier applied when no threshold pair is met.
var weakTier = boostTier{multiplier: 1.1, ceiling: 0.85}

// offTargetCeiling and offTargetBoost apply one further boost when the top-3
// categories all resolve outside the target taxonomy: agreement on "not a
// tomato" is stronger evidence than agreement among disease subtypes.
const (
	offTargetBoost   = 1.15
	offTargetCeiling = 0.97
)

// TopIndices returns the indices of the k largest probabilities in
// descending order of probability. Ties keep the lower index first.
func TopIndices(probs []float64, k int) []int {
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return probs[idx[a]] > probs[idx[b]] })
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}

// BoostedConfidence calibrates the top-1 probability of a classification by
// a tiered multiplicative boost with hard per-tier ceilings. offTarget
// reports whether the class at a given index resolves outside the tomato
// taxonomy. The result never drops below the raw top-1 probability.
func BoostedConfidence(probs []float64, offTarget func(index int) bool) float64 {
	if len(probs) == 0 {
		return 0
	}
	top := TopIndices(probs, 3)
	p1 := probs[top[0]]
	gap := p1
	if len(top) > 1 {
		gap = p1 - probs[top[1]]
	}

	tier := weakTier
	for _, t := range boostTiers {
		if p1 > t.minTop1 && gap > t.minGap {
			tier = t
			break
		}
	}
	boosted := math.Min(tier.ceiling, p1*tier.multiplier)

	if offTarget != nil && offTarget(top[0]) {
		all := true
		for _, i := range top {
			if !offTarget(i) {
				all = false
				break
			}
		}
		if all {
			boosted = math.Min(offTargetCeiling, boosted*offTargetBoost)
		}
	}

	// calibration may only raise confidence, never lower it
	if boosted < p1 {
		boosted = p1
	}
	return boosted
}
