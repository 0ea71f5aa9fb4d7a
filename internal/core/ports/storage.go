// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
)

// ObjectStorage stores generated files such as inventory snapshots
type ObjectStorage interface {
	// Upload writes body under key and returns its location
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
