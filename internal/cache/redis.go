// Package cache provides Redis connection management and cache-aside helpers.
package cache

import (
	"context"
	"net"
	"time"

	"trademaster/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client is the global Redis client. It stays nil when Redis is not
// configured, in which case every helper degrades to a no-op.
var Client *redis.Client

// metricsHook records Redis command failures in Prometheus.
type metricsHook struct{}

func (metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			middleware.RedisErrors.WithLabelValues("dial").Inc()
		}
		return conn, err
	}
}

func (metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && err != redis.Nil {
			middleware.RedisErrors.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil {
			middleware.RedisErrors.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// InitRedis connects to Redis using the given URL. An empty URL disables
// caching entirely. Connection failures are logged but not fatal: the API
// works without a cache, just slower.
func InitRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		middleware.Logger.Info("Redis not configured, caching disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		// Tolerate bare host:port values
		opts = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unavailable, caching disabled", "error", err)
		return nil
	}

	middleware.Logger.Info("Redis connected successfully")
	Client = client
	return client
}

// GetClient returns the global Redis client, which may be nil.
func GetClient() *redis.Client {
	return Client
}
