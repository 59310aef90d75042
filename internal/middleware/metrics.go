package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// RedisErrors counts failed Redis commands by command name. The cache layer
// increments it from a client hook.
var RedisErrors = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gigboard_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"command"},
)

func init() {
	prometheus.MustRegister(RedisErrors)
}

// InitMetrics creates the Prometheus HTTP metrics collector for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
