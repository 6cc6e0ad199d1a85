package entities

import "encoding/json"

// Canonical soil parameter keys as they arrive from the sensing layer.
const (
	ParamPH                = "ph_level"
	ParamTemperature       = "temperature"
	ParamMoisture          = "moisture"
	ParamNitrogen          = "nitrogen"
	ParamPhosphorus        = "phosphorus"
	ParamPotassium         = "potassium"
	ParamMoistureThreshold = "moisture_threshold"
)

// MeasurementSet is one sensed snapshot of soil parameters, keyed by the
// canonical parameter names. Treated as read-only once received.
type MeasurementSet map[string]float64

// Range is an inclusive optimal interval for a soil parameter.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// ParameterRange pairs an optimal interval with its display unit.
type ParameterRange struct {
	Optimal Range  `json:"optimal" yaml:"optimal"`
	Unit    string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// RangeConfig maps parameter name to its optimal range. It is supplied per
// request (or per field by the monitor config) and never hard-coded. The
// moisture_threshold entry gates NPK reliability: readings below its minimum
// make nutrient electrode values untrustworthy.
type RangeConfig map[string]ParameterRange

// UnmarshalJSON accepts the wire form {"optimal":[min,max],"unit":"..."}.
func (p *ParameterRange) UnmarshalJSON(b []byte) error {
	var raw struct {
		Optimal [2]float64 `json:"optimal"`
		Unit    string     `json:"unit"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Optimal = Range{Min: raw.Optimal[0], Max: raw.Optimal[1]}
	p.Unit = raw.Unit
	return nil
}

// MarshalJSON emits the wire form {"optimal":[min,max],"unit":"..."}.
func (p ParameterRange) MarshalJSON() ([]byte, error) {
	raw := struct {
		Optimal [2]float64 `json:"optimal"`
		Unit    string     `json:"unit,omitempty"`
	}{
		Optimal: [2]float64{p.Optimal.Min, p.Optimal.Max},
		Unit:    p.Unit,
	}
	return json.Marshal(raw)
}
