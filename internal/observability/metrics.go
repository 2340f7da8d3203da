package observability

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/corpkit/company-portal/internal/config"
)

const meterName = "github.com/corpkit/company-portal"

// Metrics records request and error counts as OTel instruments and keeps an in-process copy
// served on /health/metrics.
type Metrics struct {
	requestTotal metric.Int64Counter
	errorTotal   metric.Int64Counter
	durationHist metric.Float64Histogram

	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	totalLatency time.Duration
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Requests     map[string]int64 `json:"requests"`
	Errors       map[string]int64 `json:"errors"`
	TotalLatency time.Duration    `json:"total_latency_ns"`
}

// SetupMetrics installs an OTLP gRPC meter provider with a periodic reader. Without an endpoint
// a no-op provider is returned. The returned function flushes and stops the provider.
func SetupMetrics(ctx context.Context, cfg config.TelemetryConfig, serviceName string, logger *zap.Logger) (metric.MeterProvider, func(context.Context) error, error) {
	noopShutdown := func(context.Context) error { return nil }
	if cfg.Endpoint == "" {
		logger.Debug("OTEL_EXPORTER_OTLP_ENDPOINT not provided; metrics export disabled")
		return noop.NewMeterProvider(), noopShutdown, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return noop.NewMeterProvider(), noopShutdown, fmt.Errorf("otlp metrics exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		logger.Warn("otel resource", zap.Error(err))
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	logger.Info("metrics export enabled", zap.String("endpoint", cfg.Endpoint))
	return provider, provider.Shutdown, nil
}

// NewMetrics creates the instruments on provider. A nil provider records only in-process.
func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	if provider == nil {
		provider = noop.NewMeterProvider()
	}
	meter := provider.Meter(meterName)

	requestTotal, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	errorTotal, err := meter.Int64Counter(
		"http.server.errors",
		metric.WithDescription("Total number of HTTP requests answered with an error body"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"http.server.duration_ms",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		requestTotal: requestTotal,
		errorTotal:   errorTotal,
		durationHist: durationHist,
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
	}, nil
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(ctx context.Context, path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	opt := metric.WithAttributes(
		attribute.String("http.route", path),
		attribute.String("http.request.method", method),
		attribute.Int("http.response.status_code", status),
	)
	m.requestTotal.Add(ctx, 1, opt)
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000, opt)

	key := pathKey(path, method, strconv.Itoa(status))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.totalLatency += duration
}

// RecordError increments error counters keyed by error code.
func (m *Metrics) RecordError(ctx context.Context, path, method, code string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.route", path),
		attribute.String("http.request.method", method),
		attribute.String("error.code", code),
	))

	key := pathKey(path, method, code)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{Requests: map[string]int64{}, Errors: map[string]int64{}}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := Snapshot{
		Requests:     make(map[string]int64, len(m.requestCount)),
		Errors:       make(map[string]int64, len(m.errorCount)),
		TotalLatency: m.totalLatency,
	}
	for k, v := range m.requestCount {
		snap.Requests[k] = v
	}
	for k, v := range m.errorCount {
		snap.Errors[k] = v
	}
	return snap
}

// RouteLabel names the matched route template of a request, e.g. "/logs/worker". Requests
// that matched no route are labeled "unmatched" to keep metric cardinality bounded.
func RouteLabel(c *fiber.Ctx) string {
	route := c.Route()
	if route == nil || (route.Path == "/" && c.Path() != "/") {
		return "unmatched"
	}
	return route.Path
}

func pathKey(path, method, suffix string) string {
	return path + "|" + method + "|" + suffix
}
