// Package metrics declares the Prometheus collectors of the overtime server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	rpcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "overtime",
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "Total number of RPCs broken down by procedure and Connect code.",
	}, []string{"procedure", "code"})

	rpcLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "overtime",
		Subsystem: "rpc",
		Name:      "latency_seconds",
		Help:      "Latency distribution for RPCs.",
		Buckets: []float64{
			0.001, 0.002, 0.005,
			0.01, 0.02, 0.05,
			0.1, 0.2, 0.5,
			1, 2, 5, 10,
		},
	}, []string{"procedure"})

	importRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "overtime",
		Subsystem: "csv_import",
		Name:      "rows_total",
		Help:      "CSV import rows broken down by result (imported, rejected).",
	}, []string{"result"})

	recordsExported = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "overtime",
		Subsystem: "export",
		Name:      "records_total",
		Help:      "Records written by exports, per format.",
	}, []string{"format"})
)

// ObserveRPC records one finished RPC. code is "ok" on success.
func ObserveRPC(procedure, code string, elapsed time.Duration) {
	rpcRequests.WithLabelValues(procedure, code).Inc()
	rpcLatency.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// ObserveImport counts the outcome of one CSV import.
func ObserveImport(imported, rejected int) {
	importRows.WithLabelValues("imported").Add(float64(imported))
	importRows.WithLabelValues("rejected").Add(float64(rejected))
}

// ObserveExport counts records written in the given format ("csv", "xlsx").
func ObserveExport(format string, records int) {
	recordsExported.WithLabelValues(format).Add(float64(records))
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
