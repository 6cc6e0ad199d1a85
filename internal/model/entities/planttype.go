package entities

// PlantType is the resolved category of a classified image.
type PlantType string

const (
	PlantTomatoLeaf     PlantType = "Tomato Leaf"
	PlantTomatoFruit    PlantType = "Tomato Fruit"
	PlantNonTomatoLeaf  PlantType = "Non-Tomato Leaf"
	PlantNonPlantObject PlantType = "Non-Plant Object"
	PlantNonTomato      PlantType = "Non-Tomato"
)

// IsTomato reports whether the category is a tomato plant part.
func (p PlantType) IsTomato() bool {
	return p == PlantTomatoLeaf || p == PlantTomatoFruit
}

// TomatoPart identifies which part of the tomato plant was photographed.
type TomatoPart string

const (
	PartLeaf  TomatoPart = "Leaf"
	PartFruit TomatoPart = "Fruit"
)

// Part maps the plant type to a tomato part; nil for non-tomato categories.
func (p PlantType) Part() *TomatoPart {
	switch p {
	case PlantTomatoLeaf:
		part := PartLeaf
		return &part
	case PlantTomatoFruit:
		part := PartFruit
		return &part
	default:
		return nil
	}
}

// HealthStatus is the severity band of a diagnosed tomato plant.
type HealthStatus string

const (
	HealthHealthy   HealthStatus = "Healthy"
	HealthModerate  HealthStatus = "Moderate"
	HealthCritical  HealthStatus = "Critical"
	HealthUnhealthy HealthStatus = "Unhealthy"
)

// SoilStatus is the quality band derived from the regressor score.
type SoilStatus string

const (
	SoilExcellent SoilStatus = "Excellent"
	SoilGood      SoilStatus = "Good"
	SoilAverage   SoilStatus = "Average"
	SoilPoor      SoilStatus = "Poor"
	SoilVeryPoor  SoilStatus = "Very Poor"
)
