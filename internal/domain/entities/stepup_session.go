package entities

import (
	"encoding/json"
	"time"
)

// VerificationKind is one kind of additional proof the risk gate may
// require before a sensitive action executes.

type VerificationKind string

const (
	VerificationPassword VerificationKind = "password"
	VerificationHuman    VerificationKind = "human_verification"
)

// ActionType identifies the gated business operation a step-up session was
// opened for.

type ActionType string

const (
	// ActionQuotationApproval is the financially binding approve decision.
	ActionQuotationApproval ActionType = "quotation_approval"
	// ActionQuotationDecision covers reject and revise, which close or loop
	// the document without committing money.
	ActionQuotationDecision ActionType = "quotation_decision"
	ActionPaymentProof      ActionType = "payment_proof"
)

// StepUpSession is the durable, single-use challenge state for one
// (actor, action, document) triple.
//
// Storage model (DynamoDB):
//   - PK: id
//   - consumed flag is claimed with a conditional write so one successful
//     satisfy can never authorize a second action.
//
// Payload carries the original request body so a satisfied challenge can
// resume the action without the client resubmitting; after expiry the
// payload is gone and the caller restarts from the original action.
type StepUpSession struct {
	ID             string             `json:"id"`
	ActorID        string             `json:"actor_id"`
	Action         ActionType         `json:"action"`
	DocumentRef    string             `json:"document_ref"`
	Required       []VerificationKind `json:"required"`
	Payload        json.RawMessage    `json:"payload,omitempty"`
	FailedAttempts int                `json:"failed_attempts"`
	Consumed       bool               `json:"consumed"`
	ExpiresAt      time.Time          `json:"expires_at"`
	CreatedAt      time.Time          `json:"created_at"`
}

// IsExpired reports whether the session can no longer be satisfied.
func (s StepUpSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Requires reports whether the given verification kind is outstanding.
func (s StepUpSession) Requires(kind VerificationKind) bool {
	for _, k := range s.Required {
		if k == kind {
			return true
		}
	}
	return false
}

// Without returns the outstanding kinds minus the given one. Used to retire
// a satisfied single-use proof (a spent human-verification token) while
// another kind is still outstanding.
func (s StepUpSession) Without(kind VerificationKind) []VerificationKind {
	remaining := make([]VerificationKind, 0, len(s.Required))
	for _, k := range s.Required {
		if k != kind {
			remaining = append(remaining, k)
		}
	}
	return remaining
}
