// Package monitor buffers raw soil readings from the field probes and runs
// the soil pipeline over them on a schedule, publishing one report event per
// sensor per cycle.
package monitor

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"tomatodiag/internal/analysis"
	"tomatodiag/internal/model/entities"
	"tomatodiag/internal/model/messages"
	"tomatodiag/pkg/dedup"
	"tomatodiag/pkg/mqttclient"
)

type bufferKey struct {
	FieldID  string
	SensorID string
}

type Service struct {
	consumer  mqttclient.IConsumer
	publisher mqttclient.IPublisher
	analyzer  *analysis.SoilAnalyzer
	ranges    *Ranges
	schedule  string

	mutex  sync.Mutex
	buffer map[bufferKey][]messages.SoilReading
	dedup  *dedup.Deduper
}

func NewService(consumer mqttclient.IConsumer, publisher mqttclient.IPublisher, analyzer *analysis.SoilAnalyzer, ranges *Ranges, schedule string) *Service {
	return &Service{
		consumer:  consumer,
		publisher: publisher,
		analyzer:  analyzer,
		ranges:    ranges,
		schedule:  schedule,
		buffer:    make(map[bufferKey][]messages.SoilReading),
		dedup:     dedup.New(10*time.Minute, 20000),
	}
}

func (s *Service) messageHandler(topic string, message mqtt.Message) error {
	// readings ride QoS1; drop broker redeliveries
	if !s.dedup.ShouldProcess(dedup.Key(message.Topic(), message.Payload())) {
		return nil
	}

	var reading messages.SoilReading
	if err := json.Unmarshal(message.Payload(), &reading); err != nil {
		log.Printf("monitor: unmarshal soil reading: %v", err)
		return err
	}

	key := bufferKey{FieldID: reading.FieldID, SensorID: reading.SensorID}
	s.mutex.Lock()
	s.buffer[key] = append(s.buffer[key], reading)
	s.mutex.Unlock()

	return nil
}

// Start consumes readings in the background and runs analysis cycles on the
// cron schedule until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	s.consumer.SetHandler(s.messageHandler)
	go s.consumer.ConsumeMessage(ctx)

	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() { s.RunCycle(ctx) }); err != nil {
		return err
	}
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	s.publisher.Close()
	return nil
}

// RunCycle drains the buffer: every sensor with readings gets its samples
// averaged into one measurement set, analyzed, and published as a report.
func (s *Service) RunCycle(ctx context.Context) {
	s.mutex.Lock()
	batches := make(map[bufferKey][]messages.SoilReading, len(s.buffer))
	for key, readings := range s.buffer {
		if len(readings) == 0 {
			continue
		}
		batches[key] = readings
		s.buffer[key] = nil
	}
	s.mutex.Unlock()

	log.Printf("monitor: analysis cycle over %d sensors", len(batches))

	for key, readings := range batches {
		data := averageReadings(readings)
		cfg := s.ranges.For(key.FieldID)

		result, err := s.analyzer.Analyze(ctx, data, cfg)
		if err != nil {
			log.Printf("monitor: analyze %s/%s: %v", key.FieldID, key.SensorID, err)
			continue
		}

		evt := messages.SoilReportEvent{
			ReportID:        uuid.NewString(),
			FieldID:         key.FieldID,
			SensorID:        key.SensorID,
			Status:          result.Status,
			QualityScore:    result.QualityScore,
			Confidence:      result.Confidence,
			Issues:          result.Issues,
			Recommendations: result.Recommendations,
			Timestamp:       time.Now().UTC(),
		}
		payload, err := json.Marshal(evt)
		if err != nil {
			log.Printf("monitor: marshal report: %v", err)
			continue
		}
		topic := "event/soilReport/" + key.FieldID + "/" + key.SensorID
		if err := s.publisher.PublishTo(topic, payload); err != nil {
			log.Printf("monitor: publish report for %s/%s: %v", key.FieldID, key.SensorID, err)
		} else {
			log.Printf("monitor: published %s report for %s/%s (score %.1f)",
				result.Status, key.FieldID, key.SensorID, result.QualityScore)
		}
	}
}

// averageReadings folds a batch of samples into one measurement set.
func averageReadings(readings []messages.SoilReading) entities.MeasurementSet {
	n := float64(len(readings))
	var ph, temp, moist, nitrogen, phosphorus, potassium float64
	for _, r := range readings {
		ph += r.PH
		temp += r.Temperature
		moist += r.Moisture
		nitrogen += r.Nitrogen
		phosphorus += r.Phosphorus
		potassium += r.Potassium
	}
	return entities.MeasurementSet{
		entities.ParamPH:          ph / n,
		entities.ParamTemperature: temp / n,
		entities.ParamMoisture:    moist / n,
		entities.ParamNitrogen:    nitrogen / n,
		entities.ParamPhosphorus:  phosphorus / n,
		entities.ParamPotassium:   potassium / n,
	}
}
