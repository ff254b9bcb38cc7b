package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// legalTransitions is the full state graph. Everything not listed here is
// rejected with IllegalTransitionError; expiry is derived from the validity
// window rather than requested by callers.
var legalTransitions = map[entities.QuotationStatus][]entities.QuotationStatus{
	entities.QuotationStatusDraft:     {entities.QuotationStatusSubmitted},
	entities.QuotationStatusSubmitted: {entities.QuotationStatusIssued, entities.QuotationStatusAdjustmentRequired},
	entities.QuotationStatusIssued: {
		entities.QuotationStatusApproved,
		entities.QuotationStatusRejected,
		entities.QuotationStatusRevisionRequested,
	},
	entities.QuotationStatusRevisionRequested:  {entities.QuotationStatusIssued},
	entities.QuotationStatusAdjustmentRequired: {entities.QuotationStatusSubmitted},
}

func transitionAllowed(from, to entities.QuotationStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DraftLine is one requested item for a new draft; price and availability
// snapshots are resolved by the usecase.
type DraftLine struct {
	ItemRef  string `json:"item_ref"`
	Quantity int    `json:"quantity"`
}

// IssueTerms are the staff-priced adjustments applied when issuing.
type IssueTerms struct {
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
}

// DecisionPayload is the original buyer decision request, captured verbatim
// in a step-up session so a satisfied challenge can resume it.
type DecisionPayload struct {
	Reference string                `json:"reference"`
	ActorID   string                `json:"actor_id"`
	Kind      entities.DecisionKind `json:"kind"`
	Comment   string                `json:"comment,omitempty"`
}

// DecisionResult is the typed outcome of Decide: executed, or suspended
// behind a step-up challenge.
type DecisionResult struct {
	Quotation   entities.Quotation
	OrderNumber string
	Challenge   *entities.StepUpSession
}

// IQuotationUseCase exposes the quotation lifecycle operations.
//
// Decide is the gated entry point; ExecuteDecision re-runs the full action
// after a satisfied step-up challenge, re-validating everything against
// current state.

type IQuotationUseCase interface {
	CreateDraft(ctx context.Context, accountID string, lines []DraftLine) (entities.Quotation, error)
	GetByReference(ctx context.Context, reference string) (entities.Quotation, error)
	Submit(ctx context.Context, reference, actorID string, confirmAdjustments bool) (entities.Quotation, error)
	Issue(ctx context.Context, reference, actorID string, terms IssueTerms) (entities.Quotation, error)
	FlagAdjustmentRequired(ctx context.Context, reference, actorID, comment string) (entities.Quotation, error)
	Reissue(ctx context.Context, reference, actorID string, terms IssueTerms) (entities.Quotation, error)
	Decide(ctx context.Context, payload DecisionPayload) (DecisionResult, error)
	ExecuteDecision(ctx context.Context, payload DecisionPayload) (DecisionResult, error)
}

type QuotationUseCase struct {
	repo       interfaces.IQuotationRepository
	pricing    interfaces.IPricingProvider
	oracle     interfaces.IAvailabilityOracle
	reconciler *AvailabilityReconciler
	gate       IRiskGateUseCase
	conversion IOrderConversionUseCase
	audit      interfaces.IAuditSink
	validity   time.Duration
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	pricing interfaces.IPricingProvider,
	oracle interfaces.IAvailabilityOracle,
	reconciler *AvailabilityReconciler,
	gate IRiskGateUseCase,
	conversion IOrderConversionUseCase,
	audit interfaces.IAuditSink,
	validity time.Duration,
) *QuotationUseCase {
	if validity <= 0 {
		validity = 14 * 24 * time.Hour
	}
	return &QuotationUseCase{
		repo:       repo,
		pricing:    pricing,
		oracle:     oracle,
		reconciler: reconciler,
		gate:       gate,
		conversion: conversion,
		audit:      audit,
		validity:   validity,
	}
}

func (u *QuotationUseCase) CreateDraft(ctx context.Context, accountID string, lines []DraftLine) (entities.Quotation, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return entities.Quotation{}, ErrInvalidAccountID
	}
	if len(lines) == 0 {
		return entities.Quotation{}, ErrInvalidLineItems
	}

	now := time.Now().UTC()
	items := make([]entities.LineItem, 0, len(lines))
	for _, line := range lines {
		ref := strings.TrimSpace(line.ItemRef)
		if ref == "" || line.Quantity <= 0 {
			return entities.Quotation{}, ErrInvalidLineItems
		}
		snapshot, err := u.pricing.Snapshot(ctx, ref)
		if err != nil {
			return entities.Quotation{}, err
		}
		if snapshot.ItemRef == "" {
			return entities.Quotation{}, ErrUnknownCatalogItem
		}
		available, err := u.oracle.Available(ctx, ref)
		if err != nil {
			return entities.Quotation{}, err
		}
		items = append(items, entities.LineItem{
			ItemRef:             ref,
			Name:                snapshot.Name,
			Quantity:            line.Quantity,
			UnitPrice:           snapshot.UnitPrice,
			AvailableAtCreation: available,
		})
	}

	q := entities.Quotation{
		Reference:  newQuotationReference(),
		AccountID:  accountID,
		Items:      items,
		Status:     entities.QuotationStatusDraft,
		ValidFrom:  now,
		ValidUntil: now.Add(u.validity),
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	q.Recalculate()

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] draft created reference=%s account=%s items=%d total=%.2f", created.Reference, accountID, len(items), created.GrandTotal)
	return created, nil
}

func (u *QuotationUseCase) GetByReference(ctx context.Context, reference string) (entities.Quotation, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.Quotation{}, ErrInvalidReference
	}
	q, err := u.repo.GetByReference(ctx, reference)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Reference == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

// Submit runs the draft -> submitted transition (also resubmission after
// adjustment_required). Reconciliation flags are returned untouched unless
// the caller has confirmed them, in which case the lines are rewritten to
// the reconciled quantities before the transition commits.
func (u *QuotationUseCase) Submit(ctx context.Context, reference, actorID string, confirmAdjustments bool) (entities.Quotation, error) {
	q, err := u.GetByReference(ctx, reference)
	if err != nil {
		return entities.Quotation{}, err
	}

	adjustments, err := u.reconciler.Reconcile(ctx, q.Items)
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(adjustments) > 0 && !confirmAdjustments {
		// Document left unchanged; the caller gets the structured list.
		return entities.Quotation{}, &AvailabilityConflictError{Adjustments: adjustments}
	}

	return u.transition(ctx, q, entities.QuotationStatusSubmitted, actorID, func(doc *entities.Quotation) error {
		if len(adjustments) == 0 {
			return nil
		}
		doc.Items = ApplyAdjustments(doc.Items, adjustments)
		if len(doc.Items) == 0 {
			return ErrNoAvailableItems
		}
		return nil
	})
}

func (u *QuotationUseCase) Issue(ctx context.Context, reference, actorID string, terms IssueTerms) (entities.Quotation, error) {
	q, err := u.GetByReference(ctx, reference)
	if err != nil {
		return entities.Quotation{}, err
	}
	return u.transition(ctx, q, entities.QuotationStatusIssued, actorID, applyTerms(terms))
}

// FlagAdjustmentRequired sends the document back to the buyer with the
// staff's note on what must change.
func (u *QuotationUseCase) FlagAdjustmentRequired(ctx context.Context, reference, actorID, comment string) (entities.Quotation, error) {
	q, err := u.GetByReference(ctx, reference)
	if err != nil {
		return entities.Quotation{}, err
	}
	return u.transition(ctx, q, entities.QuotationStatusAdjustmentRequired, actorID, func(doc *entities.Quotation) error {
		doc.StaffComment = strings.TrimSpace(comment)
		return nil
	})
}

func (u *QuotationUseCase) Reissue(ctx context.Context, reference, actorID string, terms IssueTerms) (entities.Quotation, error) {
	return u.Issue(ctx, reference, actorID, terms)
}

// Decide is the buyer's approve/reject/revise entry point, intercepted by
// the risk gate. The document is checked first: a retried approval observes
// its prior success through AlreadyFinalized instead of a fresh challenge,
// and nonexistent or non-decidable documents never open a session. A
// Challenge result means nothing was executed yet.
func (u *QuotationUseCase) Decide(ctx context.Context, payload DecisionPayload) (DecisionResult, error) {
	if err := validateDecisionPayload(&payload); err != nil {
		return DecisionResult{}, err
	}

	q, err := u.GetByReference(ctx, payload.Reference)
	if err != nil {
		return DecisionResult{}, err
	}
	if err := u.checkDecidable(ctx, q, payload); err != nil {
		return DecisionResult{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return DecisionResult{}, err
	}
	decision, err := u.gate.Evaluate(ctx, payload.ActorID, decisionActionType(payload.Kind), payload.Reference, raw)
	if err != nil {
		return DecisionResult{}, err
	}
	if !decision.Allowed {
		return DecisionResult{Challenge: decision.Session}, nil
	}
	return u.ExecuteDecision(ctx, payload)
}

// checkDecidable rejects decisions that cannot possibly execute, before a
// step-up session is opened for them.
func (u *QuotationUseCase) checkDecidable(ctx context.Context, q entities.Quotation, payload DecisionPayload) error {
	if q.AccountID != payload.ActorID {
		return ErrNotDocumentOwner
	}

	effective := q.EffectiveStatus(time.Now().UTC())
	if effective.IsTerminal() {
		if effective != q.Status {
			u.persistExpiry(ctx, q)
		}
		return &AlreadyFinalizedError{Status: effective, OrderNumber: q.LinkedOrderID}
	}
	if target := decisionTarget(payload.Kind); !transitionAllowed(effective, target) {
		return &IllegalTransitionError{From: effective, To: target}
	}
	return nil
}

// decisionActionType classifies the decision for the risk gate: only an
// approval commits money and is binding by default.
func decisionActionType(kind entities.DecisionKind) entities.ActionType {
	if kind == entities.DecisionApprove {
		return entities.ActionQuotationApproval
	}
	return entities.ActionQuotationDecision
}

func decisionTarget(kind entities.DecisionKind) entities.QuotationStatus {
	switch kind {
	case entities.DecisionApprove:
		return entities.QuotationStatusApproved
	case entities.DecisionReject:
		return entities.QuotationStatusRejected
	default:
		return entities.QuotationStatusRevisionRequested
	}
}

// ExecuteDecision runs the decision against current state. It is invoked
// directly when the gate allowed the action and again on resumption after a
// satisfied step-up challenge, so every business invariant is re-validated
// here rather than trusted from the captured payload.
func (u *QuotationUseCase) ExecuteDecision(ctx context.Context, payload DecisionPayload) (DecisionResult, error) {
	if err := validateDecisionPayload(&payload); err != nil {
		return DecisionResult{}, err
	}

	switch payload.Kind {
	case entities.DecisionApprove:
		order, err := u.conversion.Convert(ctx, payload.Reference, payload.ActorID, payload.Comment)
		if err != nil {
			return DecisionResult{}, err
		}
		q, err := u.GetByReference(ctx, payload.Reference)
		if err != nil {
			return DecisionResult{}, err
		}
		return DecisionResult{Quotation: q, OrderNumber: order.OrderNumber}, nil

	case entities.DecisionReject:
		q, err := u.GetByReference(ctx, payload.Reference)
		if err != nil {
			return DecisionResult{}, err
		}
		if q.AccountID != payload.ActorID {
			return DecisionResult{}, ErrNotDocumentOwner
		}
		now := time.Now().UTC()
		updated, err := u.transition(ctx, q, entities.QuotationStatusRejected, payload.ActorID, func(doc *entities.Quotation) error {
			doc.Decision = &entities.Decision{Kind: entities.DecisionReject, Comment: payload.Comment, DecidedAt: now}
			return nil
		})
		if err != nil {
			return DecisionResult{}, err
		}
		return DecisionResult{Quotation: updated}, nil

	case entities.DecisionRevise:
		q, err := u.GetByReference(ctx, payload.Reference)
		if err != nil {
			return DecisionResult{}, err
		}
		if q.AccountID != payload.ActorID {
			return DecisionResult{}, ErrNotDocumentOwner
		}
		now := time.Now().UTC()
		updated, err := u.transition(ctx, q, entities.QuotationStatusRevisionRequested, payload.ActorID, func(doc *entities.Quotation) error {
			doc.Decision = &entities.Decision{Kind: entities.DecisionRevise, Comment: payload.Comment, DecidedAt: now}
			return nil
		})
		if err != nil {
			return DecisionResult{}, err
		}
		return DecisionResult{Quotation: updated}, nil

	default:
		return DecisionResult{}, ErrInvalidDecision
	}
}

// transition enforces the state graph and commits the new status, any
// mutations and the recomputed totals atomically through the repository's
// compare-and-swap. A losing concurrent writer observes AlreadyFinalized or
// IllegalTransition, never a silent overwrite.
func (u *QuotationUseCase) transition(
	ctx context.Context,
	q entities.Quotation,
	to entities.QuotationStatus,
	actorID string,
	mutate func(*entities.Quotation) error,
) (entities.Quotation, error) {
	now := time.Now().UTC()

	effective := q.EffectiveStatus(now)
	if effective.IsTerminal() {
		if effective != q.Status {
			// Validity lapsed since the last write; converge the stored
			// status so later reads agree.
			u.persistExpiry(ctx, q)
		}
		return entities.Quotation{}, &AlreadyFinalizedError{Status: effective, OrderNumber: q.LinkedOrderID}
	}
	if !transitionAllowed(effective, to) {
		return entities.Quotation{}, &IllegalTransitionError{From: effective, To: to}
	}

	updated := q
	updated.Items = make([]entities.LineItem, len(q.Items))
	copy(updated.Items, q.Items)
	if mutate != nil {
		if err := mutate(&updated); err != nil {
			return entities.Quotation{}, err
		}
	}
	updated.Status = to
	updated.UpdatedAt = now
	updated.Recalculate()

	stored, err := u.repo.UpdateTransition(ctx, updated, q.Status, q.Version)
	if err != nil {
		return entities.Quotation{}, err
	}
	if stored.Reference == "" {
		current, err := u.repo.GetByReference(ctx, q.Reference)
		if err != nil {
			return entities.Quotation{}, err
		}
		if current.Status.IsTerminal() {
			return entities.Quotation{}, &AlreadyFinalizedError{Status: current.Status, OrderNumber: current.LinkedOrderID}
		}
		return entities.Quotation{}, &IllegalTransitionError{From: current.Status, To: to}
	}

	u.record(ctx, actorID, q.Reference, string(q.Status)+" -> "+string(to))
	log.Printf("[quotation][usecase] transition reference=%s %s -> %s", q.Reference, q.Status, to)
	return stored, nil
}

// persistExpiry lazily converges a lapsed document to its derived expired
// status. Best effort: a lost race means someone else already wrote it.
func (u *QuotationUseCase) persistExpiry(ctx context.Context, q entities.Quotation) {
	expired := q
	expired.Status = entities.QuotationStatusExpired
	expired.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.UpdateTransition(ctx, expired, q.Status, q.Version); err != nil {
		log.Printf("[quotation][usecase] expiry persist failed reference=%s err=%v", q.Reference, err)
	}
}

func (u *QuotationUseCase) record(ctx context.Context, actorID, reference, detail string) {
	if u.audit == nil {
		return
	}
	ev := entities.AuditEvent{
		ID:          uuid.NewString(),
		ActorID:     actorID,
		Action:      "quotation_transition",
		DocumentRef: reference,
		Outcome:     entities.AuditOutcomeTransition,
		Detail:      detail,
		OccurredAt:  time.Now().UTC(),
	}
	if err := u.audit.Record(ctx, ev); err != nil {
		log.Printf("[quotation][usecase] audit record failed reference=%s err=%v", reference, err)
	}
}

// applyTerms writes the staff pricing adjustments; totals are recomputed by
// the transition helper afterwards.
func applyTerms(terms IssueTerms) func(*entities.Quotation) error {
	return func(doc *entities.Quotation) error {
		if terms.Tax < 0 || terms.Shipping < 0 || terms.Discount < 0 {
			return ErrInvalidTerms
		}
		doc.Tax = terms.Tax
		doc.Shipping = terms.Shipping
		doc.Discount = terms.Discount
		return nil
	}
}

func validateDecisionPayload(p *DecisionPayload) error {
	p.Reference = strings.TrimSpace(p.Reference)
	p.ActorID = strings.TrimSpace(p.ActorID)
	if p.Reference == "" {
		return ErrInvalidReference
	}
	if p.ActorID == "" {
		return ErrInvalidAccountID
	}
	switch p.Kind {
	case entities.DecisionApprove, entities.DecisionReject:
		return nil
	case entities.DecisionRevise:
		if strings.TrimSpace(p.Comment) == "" {
			return ErrCommentRequired
		}
		return nil
	default:
		return ErrInvalidDecision
	}
}

func newQuotationReference() string {
	return "QT-" + strings.ToUpper(uuid.NewString()[:8])
}
