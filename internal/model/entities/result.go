package entities

// SoilAnalysis is the assembled report of one soil request. Created once per
// request and never mutated afterwards.
type SoilAnalysis struct {
	Status          SoilStatus `json:"soil_status"`
	QualityScore    float64    `json:"soil_quality_score"`
	Confidence      float64    `json:"confidence_score"`
	Issues          []string   `json:"soil_issues"`
	Recommendations []string   `json:"recommendations"`
}

// Diagnosis is the assembled report of one plant image request.
// HealthStatus, DiseaseType and HealthScore are nil for every non-tomato
// plant type; downstream storage depends on that nullability rule.
type Diagnosis struct {
	PredictedClass  string          `json:"predicted_class"`
	Confidence      float64         `json:"confidence"`
	PlantType       PlantType       `json:"plant_type"`
	IsTomato        bool            `json:"is_tomato"`
	TomatoPart      *TomatoPart     `json:"tomato_part"`
	HealthStatus    *HealthStatus   `json:"health_status"`
	DiseaseType     *string         `json:"disease_type"`
	HealthScore     *float64        `json:"health_score"`
	Recommendations []string        `json:"recommendations"`
	TopPredictions  []TopPrediction `json:"top_predictions"`
}
