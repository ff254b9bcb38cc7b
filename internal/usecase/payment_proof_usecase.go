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

// balanceTolerance absorbs rounding drift between the claimed amount and
// the stored outstanding balance.
const balanceTolerance = 0.01

// ProofPayload is the original payment-proof request captured in a step-up
// session for resumption.
type ProofPayload struct {
	OrderNumber   string  `json:"order_number"`
	ActorID       string  `json:"actor_id"`
	Amount        float64 `json:"amount"`
	AttachmentRef string  `json:"attachment_ref"`
}

// ProofResult is the typed outcome of Submit: the stored proof, or a
// step-up challenge with nothing stored yet.
type ProofResult struct {
	Order     entities.SalesOrder
	Proof     entities.PaymentProof
	Challenge *entities.StepUpSession
}

// IPaymentProofUseCase handles the financial side-channel on an order:
// buyer-claimed payment evidence, gated by the risk gate identically to
// quotation approval. Proofs await separate staff verification.

type IPaymentProofUseCase interface {
	Submit(ctx context.Context, payload ProofPayload) (ProofResult, error)
	ExecuteSubmit(ctx context.Context, payload ProofPayload) (ProofResult, error)
	GetOrder(ctx context.Context, orderNumber string) (entities.SalesOrder, error)
}

type PaymentProofUseCase struct {
	orders interfaces.ISalesOrderRepository
	gate   IRiskGateUseCase
	audit  interfaces.IAuditSink
}

var _ IPaymentProofUseCase = (*PaymentProofUseCase)(nil)

func NewPaymentProofUseCase(orders interfaces.ISalesOrderRepository, gate IRiskGateUseCase, audit interfaces.IAuditSink) *PaymentProofUseCase {
	return &PaymentProofUseCase{orders: orders, gate: gate, audit: audit}
}

// Submit validates the claim, then asks the risk gate. No proof is stored
// before both validation and the gate have passed.
func (u *PaymentProofUseCase) Submit(ctx context.Context, payload ProofPayload) (ProofResult, error) {
	order, err := u.validate(ctx, &payload)
	if err != nil {
		return ProofResult{}, err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return ProofResult{}, err
	}
	decision, err := u.gate.Evaluate(ctx, payload.ActorID, entities.ActionPaymentProof, order.OrderNumber, raw)
	if err != nil {
		return ProofResult{}, err
	}
	if !decision.Allowed {
		return ProofResult{Challenge: decision.Session}, nil
	}
	return u.ExecuteSubmit(ctx, payload)
}

// ExecuteSubmit appends the proof. Invoked when the gate allowed the action
// and again on resumption after a satisfied challenge; the balance check is
// re-run against the current order, never trusted from the captured
// payload.
func (u *PaymentProofUseCase) ExecuteSubmit(ctx context.Context, payload ProofPayload) (ProofResult, error) {
	order, err := u.validate(ctx, &payload)
	if err != nil {
		return ProofResult{}, err
	}

	proof := entities.PaymentProof{
		ID:            uuid.NewString(),
		Amount:        entities.Round2(payload.Amount),
		AttachmentRef: payload.AttachmentRef,
		SubmittedBy:   payload.ActorID,
		SubmittedAt:   time.Now().UTC(),
	}
	updated, err := u.orders.AppendPaymentProof(ctx, order.OrderNumber, proof, order.Version)
	if err != nil {
		return ProofResult{}, err
	}
	if updated.OrderNumber == "" {
		// The order changed underneath us; the caller retries the action.
		return ProofResult{}, ErrConflict
	}

	u.record(ctx, payload.ActorID, order.OrderNumber, proof)
	log.Printf("[proof][usecase] payment proof stored order=%s proof_id=%s amount=%.2f", order.OrderNumber, proof.ID, proof.Amount)
	return ProofResult{Order: updated, Proof: proof}, nil
}

func (u *PaymentProofUseCase) GetOrder(ctx context.Context, orderNumber string) (entities.SalesOrder, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.SalesOrder{}, ErrInvalidReference
	}
	order, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if order.OrderNumber == "" {
		return entities.SalesOrder{}, ErrOrderNotFound
	}
	return order, nil
}

// validate loads the order and checks ownership and the claim against the
// current outstanding balance, before anything is persisted.
func (u *PaymentProofUseCase) validate(ctx context.Context, payload *ProofPayload) (entities.SalesOrder, error) {
	payload.OrderNumber = strings.TrimSpace(payload.OrderNumber)
	payload.ActorID = strings.TrimSpace(payload.ActorID)
	payload.AttachmentRef = strings.TrimSpace(payload.AttachmentRef)
	if payload.ActorID == "" {
		return entities.SalesOrder{}, ErrInvalidAccountID
	}
	if payload.Amount <= 0 {
		return entities.SalesOrder{}, ErrInvalidProofAmount
	}
	if payload.AttachmentRef == "" {
		return entities.SalesOrder{}, ErrInvalidAttachmentRef
	}

	order, err := u.GetOrder(ctx, payload.OrderNumber)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if order.AccountID != payload.ActorID {
		return entities.SalesOrder{}, ErrNotDocumentOwner
	}
	if payload.Amount > order.OutstandingBalance+balanceTolerance {
		log.Printf("[proof][usecase] amount exceeds balance order=%s amount=%.2f outstanding=%.2f", order.OrderNumber, payload.Amount, order.OutstandingBalance)
		return entities.SalesOrder{}, ErrAmountExceedsBalance
	}
	return order, nil
}

func (u *PaymentProofUseCase) record(ctx context.Context, actorID, orderNumber string, proof entities.PaymentProof) {
	if u.audit == nil {
		return
	}
	ev := entities.AuditEvent{
		ID:          uuid.NewString(),
		ActorID:     actorID,
		Action:      "payment_proof_submitted",
		DocumentRef: orderNumber,
		Outcome:     entities.AuditOutcomeAllowed,
		Detail:      "proof " + proof.ID,
		OccurredAt:  time.Now().UTC(),
	}
	if err := u.audit.Record(ctx, ev); err != nil {
		log.Printf("[proof][usecase] audit record failed order=%s err=%v", orderNumber, err)
	}
}
