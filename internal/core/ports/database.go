// internal/core/ports/database.go
package ports

import "context"

// HealthReporter is implemented by backends that can describe their own health,
// abstracting the concrete driver away from the health handler.
type HealthReporter interface {
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]interface{}
}
