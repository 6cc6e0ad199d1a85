package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type fakeMessage struct {
	topic   string
	payload []byte
}

func (f fakeMessage) Duplicate() bool   { return false }
func (f fakeMessage) Qos() byte        { return 1 }
func (f fakeMessage) Retained() bool   { return false }
func (f fakeMessage) Topic() string    { return f.topic }
func (f fakeMessage) MessageID() uint16 { return 0 }
func (f fakeMessage) Payload() []byte  { return f.payload }
func (f fakeMessage) Ack()             {}

func TestHandleSoilReport(t *testing.T) {
	payload := []byte(`{
		"report_id": "r-1",
		"field_id": "field1",
		"sensor_id": "sensor2",
		"soil_status": "Poor",
		"soil_quality_score": 48.2,
		"confidence_score": 0.91,
		"soil_issues": ["Soil pH is too low (5pH) - optimal range: 6-6.8pH"],
		"recommendations": ["Apply agricultural lime"],
		"timestamp": "2026-08-30T10:00:00Z"
	}`)

	var got CommonReport
	h := NewMQTTHandler(func(rep CommonReport) { got = rep })
	if err := h.Handle("", fakeMessage{topic: "event/soilReport/field1/sensor2", payload: payload}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := CommonReport{
		ReportType:    "soil.analysis",
		SourceService: "monitor",
		ReportID:      "r-1",
		FieldID:       "field1",
		SensorID:      "sensor2",
		Severity:      "warning",
		Fields: map[string]interface{}{
			"soil_status":   "Poor",
			"quality_score": 48.2,
			"confidence":    0.91,
			"issue_count":   int64(1),
		},
		Timestamp: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleSoilReportIDsFromTopic(t *testing.T) {
	payload := []byte(`{"report_id":"r-2","soil_status":"Good","soil_quality_score":85,"confidence_score":1,"timestamp":"2026-08-30T10:00:00Z"}`)
	var got CommonReport
	h := NewMQTTHandler(func(rep CommonReport) { got = rep })
	if err := h.Handle("", fakeMessage{topic: "event/soilReport/field9/sensor4", payload: payload}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if got.FieldID != "field9" || got.SensorID != "sensor4" {
		t.Errorf("ids = %s/%s, want topic-derived field9/sensor4", got.FieldID, got.SensorID)
	}
	if got.Severity != "info" {
		t.Errorf("severity = %s, want info for a Good report", got.Severity)
	}
}

func TestHandleDiagnosisReport(t *testing.T) {
	payload := []byte(`{
		"report_id": "r-3",
		"image_id": "img-7",
		"predicted_class": "Tomato_Late_blight",
		"plant_type": "Tomato Leaf",
		"is_tomato": true,
		"health_status": "Critical",
		"disease_type": "Late Blight",
		"plant_health_score": 37.0,
		"confidence_score": 0.95,
		"timestamp": "2026-08-30T11:00:00Z"
	}`)

	var got CommonReport
	h := NewMQTTHandler(func(rep CommonReport) { got = rep })
	if err := h.Handle("", fakeMessage{topic: "event/diagnosisReport/img-7", payload: payload}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if got.ReportType != "plant.diagnosis" || got.ImageID != "img-7" {
		t.Errorf("got %+v", got)
	}
	if got.Severity != "warning" {
		t.Errorf("severity = %s, want warning for a Critical diagnosis", got.Severity)
	}
	if got.Fields["disease_type"] != "Late Blight" || got.Fields["health_score"] != 37.0 {
		t.Errorf("fields = %v", got.Fields)
	}
}

func TestHandleDiagnosisReportNonTomatoOmitsOptionalFields(t *testing.T) {
	payload := []byte(`{
		"report_id": "r-4",
		"predicted_class": "Apple",
		"plant_type": "Non-Tomato Leaf",
		"is_tomato": false,
		"health_status": null,
		"disease_type": null,
		"plant_health_score": null,
		"confidence_score": 0.91,
		"timestamp": "2026-08-30T11:00:00Z"
	}`)

	var got CommonReport
	h := NewMQTTHandler(func(rep CommonReport) { got = rep })
	if err := h.Handle("", fakeMessage{topic: "event/diagnosisReport/x", payload: payload}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	for _, k := range []string{"health_status", "disease_type", "health_score"} {
		if _, ok := got.Fields[k]; ok {
			t.Errorf("field %s should be absent for non-tomato reports", k)
		}
	}
	if got.Severity != "info" {
		t.Errorf("severity = %s, want info", got.Severity)
	}
}

func TestHandleMissingReportIDFails(t *testing.T) {
	payload := []byte(`{"soil_status":"Good","timestamp":"2026-08-30T10:00:00Z"}`)
	h := NewMQTTHandler(nil)
	if err := h.Handle("", fakeMessage{topic: "event/soilReport/f/s", payload: payload}); err == nil {
		t.Fatal("expected error for missing report_id")
	}
}

func TestHandleIgnoresForeignTopics(t *testing.T) {
	called := false
	h := NewMQTTHandler(func(CommonReport) { called = true })
	if err := h.Handle("", fakeMessage{topic: "sensor/soil/f/s", payload: []byte(`{}`)}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if called {
		t.Error("sink must not run for foreign topics")
	}
}
