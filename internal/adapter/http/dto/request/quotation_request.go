package request

import "strings"

type QuotationLineRequest struct {
	ItemRef  string `json:"item_ref" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// CreateQuotationRequest opens a new draft for a business account.
type CreateQuotationRequest struct {
	AccountID string                 `json:"account_id" binding:"required"`
	Items     []QuotationLineRequest `json:"items" binding:"required"`
}

func (r CreateQuotationRequest) ResolveAccountID() string {
	return strings.TrimSpace(r.AccountID)
}

// SubmitQuotationRequest moves a draft to submitted. ConfirmAdjustments
// accepts the reconciler's proposed rewrites from a prior attempt.
type SubmitQuotationRequest struct {
	ActorID            string `json:"actor_id" binding:"required"`
	ConfirmAdjustments bool   `json:"confirm_adjustments"`
}

// IssueQuotationRequest carries the staff pricing terms.
type IssueQuotationRequest struct {
	ActorID  string  `json:"actor_id" binding:"required"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
}

// FlagAdjustmentRequest marks a submitted quotation as needing changes.
type FlagAdjustmentRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Comment string `json:"comment"`
}
