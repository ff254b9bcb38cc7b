package entities

import "time"

// AuditOutcome classifies an audited event for compliance queries.

type AuditOutcome string

const (
	AuditOutcomeAllowed    AuditOutcome = "allowed"
	AuditOutcomeChallenged AuditOutcome = "challenged"
	AuditOutcomeFailed     AuditOutcome = "failed"
	AuditOutcomeTransition AuditOutcome = "transition"
)

// AuditEvent is one compliance record: every state transition and every
// risk-gate decision produces one. Delivery is fire-and-forget; sink
// failures never block the business operation.
type AuditEvent struct {
	ID          string       `json:"id"`
	ActorID     string       `json:"actor_id"`
	Action      string       `json:"action"`
	DocumentRef string       `json:"document_ref"`
	Outcome     AuditOutcome `json:"outcome"`
	Detail      string       `json:"detail,omitempty"`
	OccurredAt  time.Time    `json:"occurred_at"`
}
