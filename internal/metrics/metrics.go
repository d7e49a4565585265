// Package metrics はPrometheus形式のメトリクス収集を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics はアプリケーションのメトリクスコレクタ。
type Metrics struct {
	registry        *prometheus.Registry
	httpStatusTotal *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	signInTotal     *prometheus.CounterVec
}

// New はMetricsを生成し、独自レジストリにコレクタを登録する。
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpStatusTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "careerdesk_http_status_total",
				Help: "HTTPレスポンスのステータスコード別件数",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "careerdesk_http_request_duration_seconds",
				Help:    "HTTPリクエストの処理時間",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		signInTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "careerdesk_signin_total",
				Help: "サインイン試行の成否別件数",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(
		m.httpStatusTotal,
		m.httpDuration,
		m.signInTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler は/metrics用のHTTPハンドラを返す。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordSignIn はサインイン試行の結果を記録する。
func (m *Metrics) RecordSignIn(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.signInTotal.WithLabelValues(result).Inc()
}

// Middleware はHTTPリクエストのステータスと処理時間を記録するミドルウェア。
// pathラベルにはカーディナリティを抑えるためchiのルートパターンを使う。
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		m.httpStatusTotal.WithLabelValues(r.Method, path, strconv.Itoa(recorder.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder はレスポンスのステータスコードを捕捉する。
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
