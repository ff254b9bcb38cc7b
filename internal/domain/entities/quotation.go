package entities

import (
	"math"
	"time"
)

// QuotationStatus represents the lifecycle of a price quotation.
//
// Domain notes:
//   - The quotation document is the source of truth for its own state.
//   - Status transitions are enforced exclusively by the state machine in
//     the usecase layer; repositories never write a status on their own.
//   - `expired` is derived from the validity window, not user-invoked.

type QuotationStatus string

const (
	QuotationStatusDraft              QuotationStatus = "draft"
	QuotationStatusSubmitted          QuotationStatus = "submitted"
	QuotationStatusIssued             QuotationStatus = "issued"
	QuotationStatusAdjustmentRequired QuotationStatus = "adjustment_required"
	QuotationStatusRevisionRequested  QuotationStatus = "revision_requested"
	QuotationStatusApproved           QuotationStatus = "approved"
	QuotationStatusRejected           QuotationStatus = "rejected"
	QuotationStatusExpired            QuotationStatus = "expired"
)

// IsTerminal reports whether no further transitions are permitted.
func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusApproved || s == QuotationStatusRejected || s == QuotationStatusExpired
}

func (s QuotationStatus) String() string {
	return string(s)
}

// DecisionKind is the buyer's terminal-or-revision decision on an issued
// quotation.

type DecisionKind string

const (
	DecisionApprove DecisionKind = "approve"
	DecisionReject  DecisionKind = "reject"
	DecisionRevise  DecisionKind = "revise"
)

// LineItem is one requested catalog item with the price and availability
// captured at quotation creation time. Quantity is always positive; the
// reconciler removes a line instead of zeroing it.
type LineItem struct {
	ItemRef             string  `json:"item_ref"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	AvailableAtCreation int     `json:"available_at_creation"`
}

// Decision records the buyer's decision exactly once. DecidedAt zero means
// no decision has been taken yet.
type Decision struct {
	Kind      DecisionKind `json:"kind"`
	Comment   string       `json:"comment,omitempty"`
	DecidedAt time.Time    `json:"decided_at"`
}

// Quotation is the priced proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: reference (human-readable, immutable once assigned)
//   - version attribute drives optimistic concurrency; every conditional
//     write asserts the expected status and version together.
//
// Monetary representation:
//   - Totals are derived from Items plus the staff adjustments
//     (Tax/Shipping/Discount) through Recalculate; GrandTotal is never
//     written independently of its inputs.
//
type Quotation struct {
	Reference  string          `json:"reference"`
	AccountID  string          `json:"account_id"`
	Items      []LineItem      `json:"items"`
	Status     QuotationStatus `json:"status"`
	Subtotal   float64         `json:"subtotal"`
	Tax        float64         `json:"tax"`
	Shipping   float64         `json:"shipping"`
	Discount   float64         `json:"discount"`
	GrandTotal float64         `json:"grand_total"`
	ValidFrom  time.Time       `json:"valid_from"`
	ValidUntil time.Time       `json:"valid_until"`
	Decision   *Decision       `json:"decision,omitempty"`
	// StaffComment carries the latest staff note, e.g. what the buyer must
	// change when the document is flagged adjustment_required.
	StaffComment string `json:"staff_comment,omitempty"`
	// LinkedOrderID is set exactly once by a successful conversion and is
	// the authoritative idempotency marker for retried approvals.
	LinkedOrderID string    `json:"linked_order_id,omitempty"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Recalculate recomputes the financial summary from the current line items
// and adjustments. Must be called after every mutation of Items, Tax,
// Shipping or Discount.
func (q *Quotation) Recalculate() {
	subtotal := 0.0
	for _, it := range q.Items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	q.Subtotal = Round2(subtotal)
	q.GrandTotal = Round2(q.Subtotal + q.Tax + q.Shipping - q.Discount)
}

// EffectiveStatus returns the status the document should be treated as at
// the given instant: once the validity window has lapsed a non-terminal
// quotation reads as expired regardless of the stored status.
func (q Quotation) EffectiveStatus(now time.Time) QuotationStatus {
	if !q.Status.IsTerminal() && !q.ValidUntil.IsZero() && now.After(q.ValidUntil) {
		return QuotationStatusExpired
	}
	return q.Status
}

// Round2 rounds to two decimal places (currency cents).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
