package usecase

import (
	"errors"
	"fmt"

	"comercio_b2b/internal/domain/entities"
)

var (
	ErrQuotationNotFound  = errors.New("quotation not found")
	ErrOrderNotFound      = errors.New("sales order not found")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrInvalidAccountID   = errors.New("invalid account id")
	ErrInvalidLineItems   = errors.New("invalid line items")
	ErrUnknownCatalogItem = errors.New("unknown catalog item")
	ErrNoAvailableItems   = errors.New("no line items remain available")
	ErrCommentRequired    = errors.New("a comment is required for this decision")
	ErrNotDocumentOwner   = errors.New("document belongs to another account")
	ErrInvalidTerms       = errors.New("invalid pricing terms")
	ErrInvalidDecision    = errors.New("invalid decision kind")

	ErrCredentialRejected = errors.New("credential rejected")
	ErrChallengeRejected  = errors.New("human verification challenge rejected")
	ErrSessionExpired     = errors.New("step-up session expired")
	ErrNotSessionOwner    = errors.New("step-up session belongs to another actor")

	ErrInvalidProofAmount   = errors.New("invalid payment proof amount")
	ErrInvalidAttachmentRef = errors.New("invalid attachment reference")
	ErrAmountExceedsBalance = errors.New("amount exceeds outstanding balance")

	// ErrConflict marks a lost optimistic-concurrency race that is neither
	// an illegal transition nor a finalized document; the caller retries
	// with backoff.
	ErrConflict = errors.New("concurrent update conflict")

	// Anchors for errors.Is against the structured types below.
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrAlreadyFinalized     = errors.New("quotation already finalized")
	ErrAvailabilityConflict = errors.New("availability adjustments required")
)

// IllegalTransitionError names the current and attempted states so callers
// can tell "never valid" apart from "already succeeded".
type IllegalTransitionError struct {
	From entities.QuotationStatus
	To   entities.QuotationStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %s to %s", e.From, e.To)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// AlreadyFinalizedError reports a terminal document. OrderNumber carries the
// linked order when the document was finalized by a conversion, so a retried
// approval can observe its prior success.
type AlreadyFinalizedError struct {
	Status      entities.QuotationStatus
	OrderNumber string
}

func (e *AlreadyFinalizedError) Error() string {
	if e.OrderNumber != "" {
		return fmt.Sprintf("quotation already finalized as %s (order %s)", e.Status, e.OrderNumber)
	}
	return fmt.Sprintf("quotation already finalized as %s", e.Status)
}

func (e *AlreadyFinalizedError) Is(target error) bool {
	return target == ErrAlreadyFinalized
}

// AvailabilityConflictError carries the structured list of flagged items so
// the caller can drive a remediation flow without a second round-trip.
type AvailabilityConflictError struct {
	Adjustments []ItemAdjustment
}

func (e *AvailabilityConflictError) Error() string {
	return fmt.Sprintf("availability adjustments required for %d item(s)", len(e.Adjustments))
}

func (e *AvailabilityConflictError) Is(target error) bool {
	return target == ErrAvailabilityConflict
}
