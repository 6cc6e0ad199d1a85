package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"tomatodiag/internal/services/report"
	"tomatodiag/pkg/dedup"
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

func main() {
	cfg := struct {
		Broker mqttclient.Config

		InfluxURL    string
		InfluxToken  string
		InfluxOrg    string
		InfluxBucket string

		Topics        []string
		BatchSize     int
		FlushInterval time.Duration

		HTTPPort       int
		ReadinessGrace time.Duration
	}{
		Broker: mqttclient.Config{
			Host:     envStr("MQTT_HOST", "localhost"),
			Port:     envInt("MQTT_PORT", 1883),
			User:     envStr("MQTT_USER", "guest"),
			Password: envStr("MQTT_PASSWORD", "guest"),
			ClientID: envStr("HOSTNAME", "report-service"),
		},

		InfluxURL:    envStr("INFLUX_URL", "http://localhost:8086"),
		InfluxToken:  os.Getenv("INFLUX_TOKEN"),
		InfluxOrg:    envStr("INFLUX_ORG", "tomatodiag"),
		InfluxBucket: envStr("INFLUX_BUCKET", "reports"),

		Topics: func() []string {
			raw := envStr("REPORT_SUB_TOPICS", "event/soilReport/#,event/diagnosisReport/#")
			parts := strings.Split(raw, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if s := strings.TrimSpace(p); s != "" {
					out = append(out, s)
				}
			}
			return out
		}(),
		BatchSize:     envInt("WRITE_BATCH_SIZE", 10),
		FlushInterval: time.Duration(envInt("WRITE_FLUSH_INTERVAL_MS", 200)) * time.Millisecond,

		HTTPPort:       envInt("HTTP_PORT", 8080),
		ReadinessGrace: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := influxdb2.DefaultOptions().
		SetBatchSize(uint(cfg.BatchSize)).
		SetFlushInterval(uint(cfg.FlushInterval.Milliseconds()))
	influx := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken, opts)
	defer influx.Close()
	writeAPI := influx.WriteAPI(cfg.InfluxOrg, cfg.InfluxBucket)
	writer := report.NewWriter(writeAPI)

	mqttClient, err := mqttclient.NewConn(ctx, &cfg.Broker)
	if err != nil {
		log.Fatalf("report: mqtt connection error: %v", err)
	}
	defer mqttclient.CloseConn(mqttClient)

	mux := http.NewServeMux()
	mux.Handle("/healthz", report.NewHealthHandler(mqttClient, influx, writer))
	mux.Handle("/readyz", report.NewReadyHandler(mqttClient, influx, writer, 2*time.Second))
	mux.Handle("/reports/recent", report.NewRecentReportsHandler(influx, cfg.InfluxOrg, cfg.InfluxBucket))

	hs := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("report: HTTP listening on :%d", cfg.HTTPPort)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("report: http server error: %v", err)
		}
	}()

	h := report.NewMQTTHandler(func(rep report.CommonReport) {
		writeAPI.WritePoint(report.ReportToPoint(rep))
		writer.MarkIngest(rep.ReportType)
	})

	// report topics ride QoS1; suppress broker redeliveries on report_id
	d := dedup.New(10*time.Minute, 20000)

	for _, topic := range cfg.Topics {
		if strings.TrimSpace(topic) == "" {
			continue
		}
		log.Printf("report: subscribing to %s", topic)

		if token := mqttClient.Subscribe(topic, 1, func(_ mqtt.Client, m mqtt.Message) {
			if !d.ShouldProcess(dedup.Key(m.Topic(), m.Payload())) {
				return
			}
			if err := h.Handle("", m); err != nil {
				log.Printf("report: decode on %s: %v", m.Topic(), err)
			}
		}); token.Wait() && token.Error() != nil {
			log.Fatalf("report: subscribe error on %s: %v", topic, token.Error())
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Printf("report: shutting down...")

	shCtx, shCancel := context.WithTimeout(context.Background(), cfg.ReadinessGrace)
	defer shCancel()
	_ = hs.Shutdown(shCtx)

	// allow the async writer to flush
	time.Sleep(cfg.FlushInterval + 100*time.Millisecond)
}
