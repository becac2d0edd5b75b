package session

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck verifies the Redis session store is reachable. Only used when
// the redis store is configured; the cookie store has no external state.
type HealthCheck struct {
	client *goredis.Client
}

// NewHealthCheck creates a Redis health checker.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Name() string {
	return "redis"
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
