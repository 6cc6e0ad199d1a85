package model

import (
	"tomatodiag/internal/model/entities"
	"tomatodiag/internal/model/messages"
)

// Aliases exposing the common types to the services.

type (
	MeasurementSet       = entities.MeasurementSet
	RangeConfig          = entities.RangeConfig
	ParameterRange       = entities.ParameterRange
	Range                = entities.Range
	PlantType            = entities.PlantType
	TomatoPart           = entities.TomatoPart
	HealthStatus         = entities.HealthStatus
	SoilStatus           = entities.SoilStatus
	ImagePrediction      = entities.ImagePrediction
	TopPrediction        = entities.TopPrediction
	SoilReading          = messages.SoilReading
	SoilReportEvent      = messages.SoilReportEvent
	DiagnosisReportEvent = messages.DiagnosisReportEvent
)
