package request

// PaymentProofRequest is a buyer's claim of payment against an order, with
// the evidentiary attachment reference.
type PaymentProofRequest struct {
	ActorID       string  `json:"actor_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	AttachmentRef string  `json:"attachment_ref" binding:"required"`
}
