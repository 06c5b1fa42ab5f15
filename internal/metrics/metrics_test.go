package metrics_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/metrics"
	"github.com/Behyna/sms-services/autoresponder/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetrics_Recording(t *testing.T) {
	m := metrics.NewMetrics(metrics.NewRegistry())

	m.RecordInbound("webhook")
	m.RecordInbound("webhook")
	m.RecordInbound("root")
	m.RecordReply("menu")
	m.RecordDuplicate()
	m.RecordSend("submitted", 20*time.Millisecond)
	m.RecordSend("failed", 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.InboundMessages.WithLabelValues("webhook")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.InboundMessages.WithLabelValues("root")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RepliesTotal.WithLabelValues("menu")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DuplicatesSuppressed))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.OutboundSends.WithLabelValues("failed")))
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.NewMetrics(metrics.NewRegistry())
		metrics.NewMetrics(metrics.NewRegistry())
	})
}

func TestCollector_Collect(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := session.NewStore(session.Config{}, start)
	m := metrics.NewMetrics(metrics.NewRegistry())
	collector := metrics.NewCollector(m, store, zap.NewNop())

	store.CheckAndUpdate("+15550000001", start)
	store.CheckAndUpdate("+15550000002", start.Add(200*time.Second))

	collector.Collect(start.Add(400 * time.Second))

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ActiveSessions))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SessionsSwept))
	assert.Greater(t, testutil.ToFloat64(m.Goroutines), float64(0))
}

func TestCollector_StartStop(t *testing.T) {
	store := session.NewStore(session.Config{}, time.Now())
	m := metrics.NewMetrics(metrics.NewRegistry())
	collector := metrics.NewCollector(m, store, zap.NewNop())

	collector.Start(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	collector.Stop()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ServiceVersion.WithLabelValues("1.0.0", "unknown",
		time.Now().Format("2006-01-02"))))
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics(metrics.NewRegistry())

	app := fiber.New()
	app.Use(metrics.HTTPMetricsMiddleware(m, zap.NewNop()))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	for _, path := range []string{"/ok", "/fail", "/boom"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/ok", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/fail", "400")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "500")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.HTTPRequestsInFlight))
}
