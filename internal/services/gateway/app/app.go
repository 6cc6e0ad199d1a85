package app

import (
	"log"
	"time"

	"tomatodiag/internal/analysis"
	"tomatodiag/pkg/mqttclient"
)

type Config struct {
	RequestTimeout time.Duration

	// topic prefixes the gateway publishes report events under
	SoilReportTopic      string
	DiagnosisReportTopic string

	Logger *log.Logger
}

// Gateway is the request/response boundary of the decision layer. Each
// request is isolated: a failure is converted into the flat failure record
// and never crosses into another request.
type Gateway struct {
	cfg       Config
	analyzer  *analysis.SoilAnalyzer
	diagnoser *analysis.Diagnoser
	publisher mqttclient.IPublisher
	metrics   *Metrics
}

// NewGateway wires the pipelines to the boundary. publisher and metrics may
// be nil; report publishing and instrumentation are then skipped.
func NewGateway(cfg Config, analyzer *analysis.SoilAnalyzer, diagnoser *analysis.Diagnoser, publisher mqttclient.IPublisher, metrics *Metrics) *Gateway {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.SoilReportTopic == "" {
		cfg.SoilReportTopic = "event/soilReport/gateway/api"
	}
	if cfg.DiagnosisReportTopic == "" {
		cfg.DiagnosisReportTopic = "event/diagnosisReport"
	}
	return &Gateway{
		cfg:       cfg,
		analyzer:  analyzer,
		diagnoser: diagnoser,
		publisher: publisher,
		metrics:   metrics,
	}
}
