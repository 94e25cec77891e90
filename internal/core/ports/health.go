package ports

import "context"

// HealthChecker probes one dependency (Redis, a remote function). A non-nil
// error means the dependency is unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
