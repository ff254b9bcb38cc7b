package interfaces

import (
	"context"

	"comercio_b2b/internal/domain/entities"
)

// ISalesOrderRepository abstracts DynamoDB persistence for SalesOrder.
//
// ConvertQuotation commits the whole conversion in one transaction: the
// order put (must not exist), the quotation CAS to approved with the linked
// order reference (must still be issued, unlinked, at the expected version)
// and the stock reservation for every order line. A lost race returns the
// zero SalesOrder with a nil error.
//
// AppendPaymentProof appends to the order's proof list guarded by the
// version attribute; proofs are never overwritten or removed.

type ISalesOrderRepository interface {
	ConvertQuotation(ctx context.Context, order entities.SalesOrder, q entities.Quotation) (entities.SalesOrder, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.SalesOrder, error)
	AppendPaymentProof(ctx context.Context, orderNumber string, proof entities.PaymentProof, expectedVersion int64) (entities.SalesOrder, error)
}
