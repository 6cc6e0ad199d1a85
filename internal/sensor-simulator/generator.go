// Package sensor_simulator produces synthetic six-parameter soil readings
// for local runs without physical probes.
package sensor_simulator

import (
	"math/rand"
	"sync"
	"time"

	"tomatodiag/internal/model"
)

// paramSpec bounds one simulated parameter and sizes its random-walk step.
type paramSpec struct {
	min, max float64
	step     float64
}

var specs = struct {
	ph, temperature, moisture, nitrogen, phosphorus, potassium paramSpec
}{
	ph:          paramSpec{min: 5.0, max: 7.5, step: 0.05},
	temperature: paramSpec{min: 12, max: 32, step: 0.4},
	moisture:    paramSpec{min: 5, max: 70, step: 1.5},
	nitrogen:    paramSpec{min: 10, max: 80, step: 1.0},
	phosphorus:  paramSpec{min: 5, max: 60, step: 0.8},
	potassium:   paramSpec{min: 10, max: 70, step: 1.0},
}

// DataGenerator random-walks every soil parameter inside plausible bounds,
// so consecutive readings drift instead of jumping.
type DataGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand

	ph, temperature, moisture, nitrogen, phosphorus, potassium float64
}

// NewDataGenerator seeds the walk at the midpoint of each range, jittered so
// parallel simulators don't emit identical streams.
func NewDataGenerator(seed int64) *DataGenerator {
	rng := rand.New(rand.NewSource(seed))
	mid := func(s paramSpec) float64 {
		span := s.max - s.min
		return s.min + span/2 + (rng.Float64()-0.5)*span/4
	}
	return &DataGenerator{
		rng:         rng,
		ph:          mid(specs.ph),
		temperature: mid(specs.temperature),
		moisture:    mid(specs.moisture),
		nitrogen:    mid(specs.nitrogen),
		phosphorus:  mid(specs.phosphorus),
		potassium:   mid(specs.potassium),
	}
}

func (g *DataGenerator) walk(v float64, s paramSpec) float64 {
	v += (g.rng.Float64()*2 - 1) * s.step
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	return v
}

// Next advances the walk one tick and returns the reading.
func (g *DataGenerator) Next(fieldID, sensorID string) model.SoilReading {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ph = g.walk(g.ph, specs.ph)
	g.temperature = g.walk(g.temperature, specs.temperature)
	g.moisture = g.walk(g.moisture, specs.moisture)
	g.nitrogen = g.walk(g.nitrogen, specs.nitrogen)
	g.phosphorus = g.walk(g.phosphorus, specs.phosphorus)
	g.potassium = g.walk(g.potassium, specs.potassium)

	return model.SoilReading{
		FieldID:     fieldID,
		SensorID:    sensorID,
		PH:          g.ph,
		Temperature: g.temperature,
		Moisture:    g.moisture,
		Nitrogen:    g.nitrogen,
		Phosphorus:  g.phosphorus,
		Potassium:   g.potassium,
		Timestamp:   time.Now().UTC(),
	}
}
