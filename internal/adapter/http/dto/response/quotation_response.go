package response

import (
	"time"

	"comercio_b2b/internal/domain/entities"
)

type LineItemResponse struct {
	ItemRef             string  `json:"item_ref"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	AvailableAtCreation int     `json:"available_at_creation"`
}

type DecisionResponse struct {
	Kind      string    `json:"kind"`
	Comment   string    `json:"comment,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

type QuotationResponse struct {
	Reference     string             `json:"reference"`
	AccountID     string             `json:"account_id"`
	Items         []LineItemResponse `json:"items"`
	Status        string             `json:"status"`
	Subtotal      float64            `json:"subtotal"`
	Tax           float64            `json:"tax"`
	Shipping      float64            `json:"shipping"`
	Discount      float64            `json:"discount"`
	GrandTotal    float64            `json:"grand_total"`
	ValidFrom     time.Time          `json:"valid_from"`
	ValidUntil    time.Time          `json:"valid_until"`
	Decision      *DecisionResponse  `json:"decision,omitempty"`
	StaffComment  string             `json:"staff_comment,omitempty"`
	LinkedOrderID string             `json:"linked_order_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	items := make([]LineItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, LineItemResponse{
			ItemRef:             it.ItemRef,
			Name:                it.Name,
			Quantity:            it.Quantity,
			UnitPrice:           it.UnitPrice,
			AvailableAtCreation: it.AvailableAtCreation,
		})
	}
	var decision *DecisionResponse
	if q.Decision != nil {
		decision = &DecisionResponse{
			Kind:      string(q.Decision.Kind),
			Comment:   q.Decision.Comment,
			DecidedAt: q.Decision.DecidedAt,
		}
	}
	return QuotationResponse{
		Reference:     q.Reference,
		AccountID:     q.AccountID,
		Items:         items,
		Status:        string(q.EffectiveStatus(time.Now().UTC())),
		Subtotal:      q.Subtotal,
		Tax:           q.Tax,
		Shipping:      q.Shipping,
		Discount:      q.Discount,
		GrandTotal:    q.GrandTotal,
		ValidFrom:     q.ValidFrom,
		ValidUntil:    q.ValidUntil,
		Decision:      decision,
		StaffComment:  q.StaffComment,
		LinkedOrderID: q.LinkedOrderID,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}
