package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trademaster_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// OfferResolutions counts trade-offer status transitions by outcome.
	// "accepted" counts winning offers, "rejected" counts both explicit
	// rejections and siblings force-rejected by an acceptance.
	OfferResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trademaster_offer_resolutions_total",
		Help: "Total number of trade offer resolutions by outcome",
	}, []string{"outcome"})

	// ComicsSold counts listings marked sold by offer acceptance.
	ComicsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trademaster_comics_sold_total",
		Help: "Total number of comics marked as sold",
	})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler recording per-request metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
