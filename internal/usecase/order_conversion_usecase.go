package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IOrderConversionUseCase materializes an approved quotation into a sales
// order exactly once.

type IOrderConversionUseCase interface {
	Convert(ctx context.Context, reference, actorID, comment string) (entities.SalesOrder, error)
}

// OrderConversionUseCase re-checks availability against live stock, builds
// the immutable order snapshot and commits order creation, the quotation's
// approved status and the stock reservation in a single transaction.
type OrderConversionUseCase struct {
	quotations interfaces.IQuotationRepository
	orders     interfaces.ISalesOrderRepository
	reconciler *AvailabilityReconciler
	audit      interfaces.IAuditSink
}

var _ IOrderConversionUseCase = (*OrderConversionUseCase)(nil)

func NewOrderConversionUseCase(
	quotations interfaces.IQuotationRepository,
	orders interfaces.ISalesOrderRepository,
	reconciler *AvailabilityReconciler,
	audit interfaces.IAuditSink,
) *OrderConversionUseCase {
	return &OrderConversionUseCase{
		quotations: quotations,
		orders:     orders,
		reconciler: reconciler,
		audit:      audit,
	}
}

// Convert runs the issued -> approved conversion. Outcomes:
//   - clean reconciliation: the new order is returned and the quotation is
//     approved with the linked order reference set, all in one commit;
//   - availability drift: AvailabilityConflictError with the flagged items,
//     the document stays issued and approval is not finalized;
//   - already converted (retry or lost race): AlreadyFinalizedError carrying
//     the existing order number, never a duplicate order.
func (u *OrderConversionUseCase) Convert(ctx context.Context, reference, actorID, comment string) (entities.SalesOrder, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.SalesOrder{}, ErrInvalidReference
	}

	q, err := u.quotations.GetByReference(ctx, reference)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if q.Reference == "" {
		return entities.SalesOrder{}, ErrQuotationNotFound
	}
	if q.AccountID != actorID {
		return entities.SalesOrder{}, ErrNotDocumentOwner
	}

	if q.LinkedOrderID != "" {
		log.Printf("[conversion][usecase] short-circuit, already converted reference=%s order=%s", reference, q.LinkedOrderID)
		return entities.SalesOrder{}, &AlreadyFinalizedError{Status: q.Status, OrderNumber: q.LinkedOrderID}
	}

	now := time.Now().UTC()
	effective := q.EffectiveStatus(now)
	if effective.IsTerminal() {
		return entities.SalesOrder{}, &AlreadyFinalizedError{Status: effective, OrderNumber: q.LinkedOrderID}
	}
	if effective != entities.QuotationStatusIssued {
		return entities.SalesOrder{}, &IllegalTransitionError{From: effective, To: entities.QuotationStatusApproved}
	}

	// Single embedded re-check against live stock; anything newly
	// unavailable aborts before the order exists.
	adjustments, err := u.reconciler.Reconcile(ctx, q.Items)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if len(adjustments) > 0 {
		log.Printf("[conversion][usecase] aborted on availability drift reference=%s flagged=%d", reference, len(adjustments))
		return entities.SalesOrder{}, &AvailabilityConflictError{Adjustments: adjustments}
	}

	order := entities.NewSalesOrderFromQuotation(newOrderNumber(), q, now)

	approved := q
	approved.Status = entities.QuotationStatusApproved
	approved.LinkedOrderID = order.OrderNumber
	approved.Decision = &entities.Decision{Kind: entities.DecisionApprove, Comment: comment, DecidedAt: now}
	approved.UpdatedAt = now
	approved.Recalculate()

	created, err := u.orders.ConvertQuotation(ctx, order, approved)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if created.OrderNumber == "" {
		// Lost the commit race: someone else finalized this document first.
		current, err := u.quotations.GetByReference(ctx, reference)
		if err != nil {
			return entities.SalesOrder{}, err
		}
		if current.LinkedOrderID != "" || current.Status.IsTerminal() {
			return entities.SalesOrder{}, &AlreadyFinalizedError{Status: current.Status, OrderNumber: current.LinkedOrderID}
		}
		return entities.SalesOrder{}, ErrConflict
	}

	u.record(ctx, actorID, reference, created.OrderNumber)
	log.Printf("[conversion][usecase] converted reference=%s order=%s total=%.2f", reference, created.OrderNumber, created.GrandTotal)
	return created, nil
}

func (u *OrderConversionUseCase) record(ctx context.Context, actorID, reference, orderNumber string) {
	if u.audit == nil {
		return
	}
	ev := entities.AuditEvent{
		ID:          uuid.NewString(),
		ActorID:     actorID,
		Action:      "quotation_converted",
		DocumentRef: reference,
		Outcome:     entities.AuditOutcomeTransition,
		Detail:      "order " + orderNumber,
		OccurredAt:  time.Now().UTC(),
	}
	if err := u.audit.Record(ctx, ev); err != nil {
		log.Printf("[conversion][usecase] audit record failed reference=%s err=%v", reference, err)
	}
}

// newOrderNumber builds a human-readable order identity, distinct from the
// quotation reference.
func newOrderNumber() string {
	return "SO-" + strings.ToUpper(uuid.NewString()[:8])
}
