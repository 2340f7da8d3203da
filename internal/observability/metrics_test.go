package observability

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"

	"github.com/corpkit/company-portal/internal/config"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewMetrics(provider)
	require.NoError(t, err)
	return m, reader
}

// counterSum adds up the data points of an int64 counter, optionally filtered by one attribute.
func counterSum(t *testing.T, reader *sdkmetric.ManualReader, name string, filter ...attribute.KeyValue) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", name)
			for _, dp := range sum.DataPoints {
				if matchesAll(dp.Attributes, filter) {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func matchesAll(set attribute.Set, filter []attribute.KeyValue) bool {
	for _, kv := range filter {
		v, ok := set.Value(kv.Key)
		if !ok || v != kv.Value {
			return false
		}
	}
	return true
}

func TestMetrics_Counters(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordRequest(ctx, "/logs", "GET", 200, time.Millisecond)
	m.RecordRequest(ctx, "/logs", "GET", 200, time.Millisecond)
	m.RecordRequest(ctx, "/logs", "GET", 401, time.Millisecond)
	m.RecordError(ctx, "/logs", "GET", "MISSING_TOKEN")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/logs|GET|200"])
	assert.Equal(t, int64(1), snap.Requests["/logs|GET|401"])
	assert.Equal(t, int64(1), snap.Errors["/logs|GET|MISSING_TOKEN"])
	assert.Equal(t, 3*time.Millisecond, snap.TotalLatency)

	assert.Equal(t, int64(3), counterSum(t, reader, "http.server.requests"))
	assert.Equal(t, int64(2), counterSum(t, reader, "http.server.requests", attribute.Int("http.response.status_code", 200)))
	assert.Equal(t, int64(1), counterSum(t, reader, "http.server.errors", attribute.String("error.code", "MISSING_TOKEN")))
}

func TestMetrics_DurationHistogram(t *testing.T) {
	m, reader := newTestMetrics(t)
	m.RecordRequest(context.Background(), "/", "GET", 200, 1500*time.Microsecond)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			if metric.Name != "http.server.duration_ms" {
				continue
			}
			hist, ok := metric.Data.(metricdata.Histogram[float64])
			require.True(t, ok)
			require.Len(t, hist.DataPoints, 1)
			assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
			assert.InDelta(t, 1.5, hist.DataPoints[0].Sum, 0.001)
			found = true
		}
	}
	assert.True(t, found)
}

func TestMetrics_NilProviderRecordsInProcess(t *testing.T) {
	m, err := NewMetrics(nil)
	require.NoError(t, err)

	m.RecordRequest(context.Background(), "/", "GET", 200, 0)
	assert.Equal(t, int64(1), m.Snapshot().Requests["/|GET|200"])
}

func TestMetrics_SnapshotIsCopy(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.RecordRequest(context.Background(), "/", "GET", 200, 0)

	snap := m.Snapshot()
	snap.Requests["/|GET|200"] = 99
	assert.Equal(t, int64(1), m.Snapshot().Requests["/|GET|200"])
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest(context.Background(), "/", "GET", 200, 0)
	m.RecordError(context.Background(), "/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}

func TestMetrics_Concurrent(t *testing.T) {
	m, reader := newTestMetrics(t)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordRequest(context.Background(), "/verify", "GET", 200, 0)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(100), m.Snapshot().Requests["/verify|GET|200"])
	assert.Equal(t, int64(100), counterSum(t, reader, "http.server.requests"))
}

func TestSetupMetrics_NoEndpoint(t *testing.T) {
	provider, shutdown, err := SetupMetrics(context.Background(), config.TelemetryConfig{}, "test", zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NoError(t, shutdown(context.Background()))

	_, err = NewMetrics(provider)
	assert.NoError(t, err)
}

func TestRouteLabel(t *testing.T) {
	var label string
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		label = RouteLabel(c)
		return err
	})
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	cases := map[string]string{
		"/":             "/",
		"/items/42":     "/items/:id",
		"/random/12345": "unmatched",
	}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, want, label, path)
	}
}
