package ports

import "context"

// HealthChecker verifies a single dependency for the health endpoint.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
