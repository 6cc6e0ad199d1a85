package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// RecentReport is the summary record served to callers.
type RecentReport struct {
	ReportType string  `json:"report_type"`
	FieldID    string  `json:"field_id,omitempty"`
	SensorID   string  `json:"sensor_id,omitempty"`
	Confidence float64 `json:"confidence"`
	Time       string  `json:"time"` // RFC3339
}

type recentQueryParams struct {
	Minutes   int
	Limit     int
	TimeoutMS int
}

func parseRecent(r *http.Request, defMin, defLim, defTOms int) recentQueryParams {
	q := r.URL.Query()
	get := func(k string, def, min, max int) int {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				if n < min {
					return min
				}
				if max > 0 && n > max {
					return max
				}
				return n
			}
		}
		return def
	}
	return recentQueryParams{
		Minutes:   get("minutes", defMin, 1, 7*24*60),
		Limit:     get("limit", defLim, 1, 500),
		TimeoutMS: get("timeout_ms", defTOms, 200, 5000),
	}
}

func buildFlux(bucket string, minutes, limit int) string {
	return fmt.Sprintf(`
from(bucket: %q)
  |> range(start: -%dm)
  |> filter(fn: (r) => r._measurement == "diagnostic_report")
  |> filter(fn: (r) => r._field == "confidence")
  |> keep(columns: ["_time","_value","report_type","field_id","sensor_id"])
  |> sort(columns: ["_time"], desc: true)
  |> limit(n:%d)
`, bucket, minutes, limit)
}

func runRecent(w http.ResponseWriter, r *http.Request, influx influxdb2.Client, org, bucket string, defMin, defLim int) {
	p := parseRecent(r, defMin, defLim, 2000)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(p.TimeoutMS)*time.Millisecond)
	defer cancel()

	api := influx.QueryAPI(org)
	res, err := api.Query(ctx, buildFlux(bucket, p.Minutes, p.Limit))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Error", "influx-query-error")
		_, _ = w.Write([]byte("[]"))
		return
	}
	defer func() { _ = res.Close() }()

	out := make([]RecentReport, 0, p.Limit)
	for res.Next() {
		rec := res.Record()

		var confidence float64
		switch v := rec.Value().(type) {
		case float64:
			confidence = v
		case int64:
			confidence = float64(v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				confidence = f
			}
		}

		str := func(key string) string {
			if v := rec.ValueByKey(key); v != nil {
				if s, ok := v.(string); ok {
					return strings.TrimSpace(s)
				}
			}
			return ""
		}

		out = append(out, RecentReport{
			ReportType: str("report_type"),
			FieldID:    str("field_id"),
			SensorID:   str("sensor_id"),
			Confidence: confidence,
			Time:       rec.Time().UTC().Format(time.RFC3339),
		})
	}
	if res.Err() != nil {
		w.Header().Set("X-Error", "influx-iter-error")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// NewRecentReportsHandler serves
// GET /reports/recent?limit=20[&minutes=1440].
func NewRecentReportsHandler(influx influxdb2.Client, org, bucket string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runRecent(w, r, influx, org, bucket, 1440, 20)
	})
}
