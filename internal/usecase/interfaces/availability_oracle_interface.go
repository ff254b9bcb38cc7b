package interfaces

import "context"

// IAvailabilityOracle is the read-only lookup of currently available
// quantity per stocked item (stocked minus committed). Side-effect free.
// A lookup failure must surface as an error ("availability unknown"),
// never as zero or unlimited.

type IAvailabilityOracle interface {
	Available(ctx context.Context, itemRef string) (int, error)
}
