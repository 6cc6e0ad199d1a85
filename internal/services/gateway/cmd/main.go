package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"

	"tomatodiag/internal/analysis"
	"tomatodiag/internal/inference"
	"tomatodiag/internal/services/gateway/app"
	"tomatodiag/pkg/mqttclient"
)

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
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	classes, err := app.LoadClasses(cfg.ClassesPath)
	if err != nil {
		log.Fatalf("gateway: %v", err)
	}

	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	regressor := inference.NewRegressor(cfg.RegressorURL, timeout,
		mkCB("soil-regressor", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs))
	classifier := inference.NewClassifier(cfg.ClassifierURL, timeout,
		mkCB("plant-classifier", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs))

	// a model whose output layer disagrees with the roster would misname
	// every prediction; refuse to start
	if n, err := classifier.NumClasses(ctx); err != nil {
		log.Printf("gateway: classifier metadata unavailable, skipping roster check: %v", err)
	} else if n != len(classes) {
		log.Fatalf("gateway: classifier reports %d classes, roster lists %d", n, len(classes))
	}

	analyzer := analysis.NewSoilAnalyzer(regressor)
	diagnoser, err := analysis.NewDiagnoser(classifier, classes)
	if err != nil {
		log.Fatalf("gateway: %v", err)
	}

	var publisher mqttclient.IPublisher
	if cfg.MQTTHost != "" {
		client, err := mqttclient.NewConn(ctx, &mqttclient.Config{
			Host:     cfg.MQTTHost,
			Port:     cfg.MQTTPort,
			User:     cfg.MQTTUser,
			Password: cfg.MQTTPassword,
			ClientID: "gateway",
		})
		if err != nil {
			log.Printf("gateway: report publishing disabled: %v", err)
		} else {
			publisher = mqttclient.NewPublisher(client, "event/diagnosisReport")
		}
	}

	reg := prometheus.NewRegistry()
	metrics := app.NewMetrics(reg)

	gw := app.NewGateway(app.Config{RequestTimeout: timeout}, analyzer, diagnoser, publisher, metrics)

	mux := http.NewServeMux()
	mux.HandleFunc("/analyze/soil", gw.HandleAnalyzeSoil)
	mux.HandleFunc("/diagnose/plant", gw.HandleDiagnosePlant)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("gateway: listening on :%s", cfg.Port)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("gateway: http server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("gateway: shutting down...")
	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = hs.Shutdown(shCtx)
}
