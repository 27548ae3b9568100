package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixando_redis_errors_total",
	Help: "Total number of Redis errors by command",
}, []string{"command"})

// AuthRejections counts authentication gate rejections by reason
// (missing, revoked, invalid). The external status is 401 for all three;
// the label keeps the internal reasons distinguishable.
var AuthRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixando_auth_rejections_total",
	Help: "Total number of rejected requests at the authentication gate",
}, []string{"reason"})

var (
	promOnce sync.Once
	promInst *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the fiberprometheus middleware for the given service
// name. The underlying collectors register in the default registry exactly
// once; later calls return the same instance.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInst = fiberprometheus.New(serviceName)
	})
	return promInst
}

// MetricsMiddleware returns the HTTP metrics collection middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
