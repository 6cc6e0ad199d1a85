package messages

import "time"

// SoilReading is one raw six-parameter sample published by a field probe.
type SoilReading struct {
	FieldID     string    `json:"field_id"`
	SensorID    string    `json:"sensor_id"`
	PH          float64   `json:"ph_level"`
	Temperature float64   `json:"temperature"`
	Moisture    float64   `json:"moisture"`
	Nitrogen    float64   `json:"nitrogen"`
	Phosphorus  float64   `json:"phosphorus"`
	Potassium   float64   `json:"potassium"`
	Timestamp   time.Time `json:"timestamp"`
}
