package entities

// ImagePrediction is the raw classifier output for one image: a probability
// vector over the class roster plus the index of the top class. Ephemeral,
// consumed only by taxonomy resolution and confidence calibration.
type ImagePrediction struct {
	Probabilities  []float64 `json:"probabilities"`
	PredictedIndex int       `json:"predicted_index"`
}

// TopPrediction is one entry of the top-k list exposed to clients, carrying
// the raw (uncalibrated) probability.
type TopPrediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}
