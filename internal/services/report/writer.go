package report

import (
	"log"
	"sync"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"
)

// Writer wraps the async WriteAPI and tracks the last write error for
// /healthz and /readyz.
type Writer struct {
	api     api.WriteAPI
	mu      sync.RWMutex
	lastErr time.Time
	counts  map[string]int64
}

// NewWriter starts the listener draining Influx's async error channel.
func NewWriter(w api.WriteAPI) *Writer {
	ww := &Writer{
		api:     w,
		lastErr: time.Now().Add(-24 * time.Hour),
		counts:  make(map[string]int64),
	}
	go func() {
		for err := range w.Errors() {
			if err != nil {
				ww.mu.Lock()
				ww.lastErr = time.Now()
				ww.mu.Unlock()
				log.Printf("report: influx write error: %v", err)
			}
		}
	}()
	return ww
}

// LastErrorAge returns how long writes have gone without an error.
func (w *Writer) LastErrorAge() time.Duration {
	if w == nil {
		return 99999 * time.Hour
	}
	w.mu.RLock()
	t := w.lastErr
	w.mu.RUnlock()
	return time.Since(t)
}

// MarkIngest bumps the per-type ingest counter.
func (w *Writer) MarkIngest(reportType string) {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.counts[reportType]++
	w.mu.Unlock()
}

// Count reads the ingest counter for one report type.
func (w *Writer) Count(reportType string) int64 {
	if w == nil {
		return 0
	}
	w.mu.RLock()
	c := w.counts[reportType]
	w.mu.RUnlock()
	return c
}
