package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sony/gobreaker"

	"tomatodiag/internal/analysis"
	"tomatodiag/internal/inference"
	"tomatodiag/internal/services/monitor"
	"tomatodiag/pkg/mqttclient"
)

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func mkCB(name string, fails, openMs, intervalMs int) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     name,
		Interval: time.Duration(intervalMs) * time.Millisecond,
		Timeout:  time.Duration(openMs) * time.Millisecond,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
	})
}

func main() {
	cfg := struct {
		Broker mqttclient.Config

		ReadingsTopic string
		Schedule      string
		RangesPath    string

		RegressorURL string
		TimeoutMs    int
		CBFails      int
		CBOpenMs     int
		CBIntervalMs int
	}{
		Broker: mqttclient.Config{
			Host:     envStr("MQTT_HOST", "localhost"),
			Port:     envInt("MQTT_PORT", 1883),
			User:     envStr("MQTT_USER", "guest"),
			Password: envStr("MQTT_PASSWORD", "guest"),
			ClientID: envStr("HOSTNAME", "monitor-service"),
		},

		ReadingsTopic: envStr("READINGS_TOPIC", "sensor/soil/#"),
		Schedule:      envStr("ANALYSIS_SCHEDULE", "@every 15m"),
		RangesPath:    envStr("RANGES_PATH", "configs/ranges.yaml"),

		RegressorURL: envStr("REGRESSOR_URL", "http://soil-model:8001"),
		TimeoutMs:    envInt("TIMEOUT_MS", 30000),
		CBFails:      envInt("CB_FAILS", 3),
		CBOpenMs:     envInt("CB_OPEN_MS", 10000),
		CBIntervalMs: envInt("CB_INTERVAL_MS", 60000),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ranges, err := monitor.LoadRanges(cfg.RangesPath)
	if err != nil {
		log.Fatalf("monitor: %v", err)
	}

	client, err := mqttclient.NewConn(ctx, &cfg.Broker)
	if err != nil {
		log.Fatalf("monitor: mqtt connection error: %v", err)
	}
	defer mqttclient.CloseConn(client)

	regressor := inference.NewRegressor(cfg.RegressorURL,
		time.Duration(cfg.TimeoutMs)*time.Millisecond,
		mkCB("soil-regressor", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs))

	consumer := mqttclient.NewConsumer(client, cfg.ReadingsTopic, nil)
	publisher := mqttclient.NewPublisher(client, "event/soilReport")

	svc := monitor.NewService(consumer, publisher, analysis.NewSoilAnalyzer(regressor), ranges, cfg.Schedule)

	log.Printf("monitor: consuming %s, schedule %q", cfg.ReadingsTopic, cfg.Schedule)
	if err := svc.Start(ctx); err != nil {
		log.Fatalf("monitor: %v", err)
	}
}
