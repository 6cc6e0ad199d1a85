// Package report consumes published analysis reports and lands them in
// InfluxDB, exposing the recent history over HTTP.
package report

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	msg "tomatodiag/internal/model/messages"
)

// CommonReport is the storage-neutral form both report families decode into.
type CommonReport struct {
	ReportType    string // soil.analysis | plant.diagnosis
	SourceService string // monitor | gateway
	ReportID      string
	FieldID       string
	SensorID      string
	ImageID       string
	Severity      string // info|warning|error
	Fields        map[string]interface{}
	Timestamp     time.Time
}

// MQTTHandler turns MQTT messages into CommonReport and hands them to sink.
type MQTTHandler struct{ sink func(CommonReport) }

func NewMQTTHandler(sink func(CommonReport)) *MQTTHandler { return &MQTTHandler{sink: sink} }

func (h *MQTTHandler) Handle(_ string, m mqtt.Message) error {
	topic := m.Topic()
	payload := m.Payload()

	var (
		rep CommonReport
		err error
	)
	switch {
	case strings.HasPrefix(topic, "event/soilReport/"):
		rep, err = decodeSoilReport(topic, payload)
	case strings.HasPrefix(topic, "event/diagnosisReport/"):
		rep, err = decodeDiagnosisReport(payload)
	default:
		return nil // not ours
	}
	if err != nil {
		return err
	}
	if h.sink != nil {
		h.sink(rep)
	}
	return nil
}

func decodeSoilReport(topic string, payload []byte) (CommonReport, error) {
	var e msg.SoilReportEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return CommonReport{}, err
	}
	fieldID, sensorID := pickIDs(topic, e.FieldID, e.SensorID, "event/soilReport/")
	if e.ReportID == "" {
		return CommonReport{}, errors.New("soilReport: missing report_id")
	}
	sev := "info"
	if e.Status == "Poor" || e.Status == "Very Poor" {
		sev = "warning"
	}
	return CommonReport{
		ReportType:    "soil.analysis",
		SourceService: "monitor",
		ReportID:      e.ReportID,
		FieldID:       fieldID,
		SensorID:      sensorID,
		Severity:      sev,
		Fields: map[string]interface{}{
			"soil_status":   string(e.Status),
			"quality_score": e.QualityScore,
			"confidence":    e.Confidence,
			"issue_count":   int64(len(e.Issues)),
		},
		Timestamp: e.Timestamp,
	}, nil
}

func decodeDiagnosisReport(payload []byte) (CommonReport, error) {
	var e msg.DiagnosisReportEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return CommonReport{}, err
	}
	if e.ReportID == "" {
		return CommonReport{}, errors.New("diagnosisReport: missing report_id")
	}
	sev := "info"
	if e.HealthStatus != nil && (*e.HealthStatus == "Critical" || *e.HealthStatus == "Unhealthy") {
		sev = "warning"
	}
	fields := map[string]interface{}{
		"predicted_class": e.PredictedClass,
		"plant_type":      string(e.PlantType),
		"is_tomato":       e.IsTomato,
		"confidence":      e.Confidence,
	}
	if e.HealthStatus != nil {
		fields["health_status"] = string(*e.HealthStatus)
	}
	if e.DiseaseType != nil {
		fields["disease_type"] = *e.DiseaseType
	}
	if e.HealthScore != nil {
		fields["health_score"] = *e.HealthScore
	}
	return CommonReport{
		ReportType:    "plant.diagnosis",
		SourceService: "gateway",
		ReportID:      e.ReportID,
		ImageID:       e.ImageID,
		Severity:      sev,
		Fields:        fields,
		Timestamp:     e.Timestamp,
	}, nil
}

// pickIDs prefers payload ids, falling back to topic "prefix/{field}/{sensor}".
func pickIDs(topic, fieldID, sensorID, prefix string) (string, string) {
	if strings.TrimSpace(fieldID) != "" && strings.TrimSpace(sensorID) != "" {
		return fieldID, sensorID
	}
	suffix := strings.TrimPrefix(topic, prefix)
	parts := strings.Split(suffix, "/")
	if len(parts) >= 2 {
		return parts[0], parts[1]
	}
	return fieldID, sensorID
}
