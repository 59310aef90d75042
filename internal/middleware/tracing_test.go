package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"gigboard/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupRecordingTracer swaps the global tracer for one that records spans
// in memory and restores it when the test ends.
func setupRecordingTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prev := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() {
		observability.Tracer = prev
		_ = tp.Shutdown(context.Background())
	})

	return recorder
}

func spanAttributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestTracingMiddleware_SpansRequests(t *testing.T) {
	recorder := setupRecordingTracer(t)

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /ping", spans[0].Name())

	attrs := spanAttributes(spans[0])
	assert.Equal(t, "GET", attrs["http.method"].AsString())
	assert.Equal(t, "/ping", attrs["http.path"].AsString())
	assert.Equal(t, int64(fiber.StatusOK), attrs["http.status_code"].AsInt64())
}

func TestTracingMiddleware_RecordsHandlerError(t *testing.T) {
	recorder := setupRecordingTracer(t)

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := spanAttributes(spans[0])
	assert.Contains(t, attrs["error"].AsString(), "boom")
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestTracingMiddleware_TagsAuthenticatedUser(t *testing.T) {
	recorder := setupRecordingTracer(t)

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(42))
		return c.Next()
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/me", nil), -1)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "42", spanAttributes(spans[0])["user.id"].AsString())
}
