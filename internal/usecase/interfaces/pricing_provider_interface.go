package interfaces

import (
	"context"

	"comercio_b2b/internal/domain/entities"
)

// IPricingProvider returns the unit price and metadata for a catalog item
// reference at the current point in time, used to freeze line-item
// snapshots at quotation creation. Unknown items return the zero snapshot.

type IPricingProvider interface {
	Snapshot(ctx context.Context, itemRef string) (entities.CatalogSnapshot, error)
}
