package sensor_simulator

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tomatodiag/pkg/mqttclient"
)

type SensorSimulator struct {
	fieldID   string
	sensorID  string
	generator *DataGenerator
	publisher mqttclient.IPublisher
}

func NewSensorSimulator(publisher mqttclient.IPublisher, gen *DataGenerator, fieldID, sensorID string) *SensorSimulator {
	return &SensorSimulator{
		fieldID:   fieldID,
		sensorID:  sensorID,
		generator: gen,
		publisher: publisher,
	}
}

// Start publishes one reading per interval until ctx is cancelled.
func (s *SensorSimulator) Start(ctx context.Context, interval time.Duration) {
	topic := "sensor/soil/" + s.fieldID + "/" + s.sensorID
	for {
		select {
		case <-ctx.Done():
			s.publisher.Close()
			return
		case <-time.After(interval):
			reading := s.generator.Next(s.fieldID, s.sensorID)
			log.Printf("sensor: pub field=%s sensor=%s moisture=%.1f%% ph=%.2f",
				reading.FieldID, reading.SensorID, reading.Moisture, reading.PH)
			payload, err := json.Marshal(reading)
			if err != nil {
				log.Printf("sensor: marshal error: %v", err)
				continue
			}
			if err := s.publisher.PublishTo(topic, payload); err != nil {
				log.Printf("sensor: publish error: %v", err)
			}
		}
	}
}
