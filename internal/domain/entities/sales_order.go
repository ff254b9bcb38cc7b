package entities

import "time"

// PaymentProof is a buyer-submitted claim of payment with an evidentiary
// attachment reference. Proofs are append-only on the order: once stored
// they are never overwritten or deleted, only verified by staff later.
type PaymentProof struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	AttachmentRef string    `json:"attachment_ref"`
	SubmittedBy   string    `json:"submitted_by"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Verified      bool      `json:"verified"`
}

// SalesOrder is the binding order materialized from an approved quotation.
//
// Storage model (DynamoDB):
//   - PK: order_number
//   - version attribute guards the append-only proof list.
//
// The item/pricing snapshot is decoupled from the quotation: later mutation
// of the quotation never changes an existing order.
type SalesOrder struct {
	OrderNumber string     `json:"order_number"`
	QuotationID string     `json:"quotation_id"`
	AccountID   string     `json:"account_id"`
	Items       []LineItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	Tax         float64    `json:"tax"`
	Shipping    float64    `json:"shipping"`
	Discount    float64    `json:"discount"`
	GrandTotal  float64    `json:"grand_total"`
	// OutstandingBalance starts at GrandTotal and is decremented only by
	// verified payment events. Invariant: never negative.
	OutstandingBalance float64        `json:"outstanding_balance"`
	PaymentProofs      []PaymentProof `json:"payment_proofs,omitempty"`
	Version            int64          `json:"version"`
	CreatedAt          time.Time      `json:"created_at"`
}

// NewSalesOrderFromQuotation snapshots an approved quotation into an order.
// The caller supplies the generated order number.
func NewSalesOrderFromQuotation(orderNumber string, q Quotation, now time.Time) SalesOrder {
	items := make([]LineItem, len(q.Items))
	copy(items, q.Items)
	return SalesOrder{
		OrderNumber:        orderNumber,
		QuotationID:        q.Reference,
		AccountID:          q.AccountID,
		Items:              items,
		Subtotal:           q.Subtotal,
		Tax:                q.Tax,
		Shipping:           q.Shipping,
		Discount:           q.Discount,
		GrandTotal:         q.GrandTotal,
		OutstandingBalance: q.GrandTotal,
		Version:            1,
		CreatedAt:          now,
	}
}
