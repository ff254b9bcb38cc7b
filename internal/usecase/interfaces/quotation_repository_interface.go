package interfaces

import (
	"context"

	"comercio_b2b/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Concurrency contract:
//   - Create fails if the reference already exists.
//   - UpdateTransition is a compare-and-swap: the write commits only when
//     the stored status and version still match the expected values. A lost
//     race returns the zero Quotation with a nil error; the caller re-reads
//     and classifies the conflict.

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByReference(ctx context.Context, reference string) (entities.Quotation, error)
	UpdateTransition(ctx context.Context, q entities.Quotation, expectedStatus entities.QuotationStatus, expectedVersion int64) (entities.Quotation, error)
}
