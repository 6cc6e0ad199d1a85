package main

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	TimeoutMs   int
	ClassesPath string

	// upstream model services
	RegressorURL  string
	ClassifierURL string

	// circuit breakers
	CBFails      int
	CBOpenMs     int
	CBIntervalMs int

	// report event broker (optional; empty host disables publishing)
	MQTTHost     string
	MQTTPort     int
	MQTTUser     string
	MQTTPassword string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func loadConfig() Config {
	return Config{
		Port:        getenv("PORT", "5000"),
		TimeoutMs:   getenvInt("TIMEOUT_MS", 30000),
		ClassesPath: getenv("CLASSES_PATH", "configs/classes.yaml"),

		RegressorURL:  getenv("REGRESSOR_URL", "http://soil-model:8001"),
		ClassifierURL: getenv("CLASSIFIER_URL", "http://plant-model:8002"),

		CBFails:      getenvInt("CB_FAILS", 3),
		CBOpenMs:     getenvInt("CB_OPEN_MS", 10000),
		CBIntervalMs: getenvInt("CB_INTERVAL_MS", 60000),

		MQTTHost:     getenv("MQTT_HOST", ""),
		MQTTPort:     getenvInt("MQTT_PORT", 1883),
		MQTTUser:     getenv("MQTT_USER", "guest"),
		MQTTPassword: getenv("MQTT_PASSWORD", "guest"),
	}
}
