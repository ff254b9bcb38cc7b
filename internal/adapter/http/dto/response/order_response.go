package response

import (
	"time"

	"comercio_b2b/internal/domain/entities"
)

type PaymentProofResponse struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	AttachmentRef string    `json:"attachment_ref"`
	SubmittedBy   string    `json:"submitted_by"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Verified      bool      `json:"verified"`
}

type OrderResponse struct {
	OrderNumber        string                 `json:"order_number"`
	QuotationID        string                 `json:"quotation_id"`
	AccountID          string                 `json:"account_id"`
	Items              []LineItemResponse     `json:"items"`
	Subtotal           float64                `json:"subtotal"`
	Tax                float64                `json:"tax"`
	Shipping           float64                `json:"shipping"`
	Discount           float64                `json:"discount"`
	GrandTotal         float64                `json:"grand_total"`
	OutstandingBalance float64                `json:"outstanding_balance"`
	PaymentProofs      []PaymentProofResponse `json:"payment_proofs,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
}

func FromSalesOrder(o entities.SalesOrder) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemResponse{
			ItemRef:             it.ItemRef,
			Name:                it.Name,
			Quantity:            it.Quantity,
			UnitPrice:           it.UnitPrice,
			AvailableAtCreation: it.AvailableAtCreation,
		})
	}
	proofs := make([]PaymentProofResponse, 0, len(o.PaymentProofs))
	for _, p := range o.PaymentProofs {
		proofs = append(proofs, PaymentProofResponse{
			ID:            p.ID,
			Amount:        p.Amount,
			AttachmentRef: p.AttachmentRef,
			SubmittedBy:   p.SubmittedBy,
			SubmittedAt:   p.SubmittedAt,
			Verified:      p.Verified,
		})
	}
	return OrderResponse{
		OrderNumber:        o.OrderNumber,
		QuotationID:        o.QuotationID,
		AccountID:          o.AccountID,
		Items:              items,
		Subtotal:           o.Subtotal,
		Tax:                o.Tax,
		Shipping:           o.Shipping,
		Discount:           o.Discount,
		GrandTotal:         o.GrandTotal,
		OutstandingBalance: o.OutstandingBalance,
		PaymentProofs:      proofs,
		CreatedAt:          o.CreatedAt,
	}
}
