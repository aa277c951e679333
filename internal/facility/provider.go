// Package facility implements the facility synthesis stage. A Provider
// yields facility records per city; the default provider synthesizes them
// in place of a live places API, and a rate-limited adapter exists for the
// real thing. Per-city generation fans out across a bounded worker pool.
package facility

import (
	"context"

	"github.com/sells-group/directory-cli/internal/model"
)

// Provider supplies facility records for a single city. Implementations
// must be safe for concurrent use; per-city calls carry no ordering
// dependency on each other.
type Provider interface {
	// Name returns the provider identifier for logs and meta.
	Name() string
	// FacilitiesFor returns the facilities for one city. An error degrades
	// that city to an empty list; it never aborts the whole run.
	FacilitiesFor(ctx context.Context, city model.City) ([]model.Facility, error)
}
