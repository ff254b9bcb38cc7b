package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// RiskPolicy configures which actions need step-up verification and how the
// requirement escalates. Callers never hardcode verification rules; they ask
// the gate.
type RiskPolicy struct {
	// BindingActions require at minimum password re-confirmation.
	BindingActions map[entities.ActionType]bool
	// ForceHumanVerification escalates every challenge to additionally
	// include a human-verification token.
	ForceHumanVerification bool
	// EscalationFailureThreshold adds human verification once an actor has
	// accumulated this many recent verification failures.
	EscalationFailureThreshold int
	SessionTTL                 time.Duration
	MaxPasswordAttempts        int
}

// DefaultRiskPolicy treats quotation approval and payment-proof submission
// as financially binding. Rejecting or requesting revision commits nothing
// and passes ungated.
func DefaultRiskPolicy() RiskPolicy {
	return RiskPolicy{
		BindingActions: map[entities.ActionType]bool{
			entities.ActionQuotationApproval: true,
			entities.ActionPaymentProof:      true,
		},
		EscalationFailureThreshold: 2,
		SessionTTL:                 10 * time.Minute,
		MaxPasswordAttempts:        3,
	}
}

// GateDecision is the outcome of Evaluate: either immediate execution is
// allowed or the action is suspended behind the returned session.
type GateDecision struct {
	Allowed bool
	Session *entities.StepUpSession
}

// Credentials are the proofs supplied to Satisfy. Only the kinds the
// session requires are checked.
type Credentials struct {
	Password               string `json:"password,omitempty"`
	HumanVerificationToken string `json:"human_verification_token,omitempty"`
}

// IRiskGateUseCase decides and enforces step-up verification per
// (actor, action, document) triple.
//
// A session is single-use: a successful Satisfy consumes it immediately.
// After Satisfy the caller must re-run the full original action against
// current state; the returned payload is a convenience, not a trusted
// snapshot.

type IRiskGateUseCase interface {
	Evaluate(ctx context.Context, actorID string, action entities.ActionType, documentRef string, payload json.RawMessage) (GateDecision, error)
	Satisfy(ctx context.Context, sessionID string, creds Credentials) (entities.StepUpSession, error)
	Cancel(ctx context.Context, sessionID, actorID string) error
}

type RiskGateUseCase struct {
	sessions    interfaces.IStepUpSessionRepository
	credentials interfaces.ICredentialVerifier
	human       interfaces.IHumanVerificationValidator
	audit       interfaces.IAuditSink
	policy      RiskPolicy

	// failures is a recent-failure heuristic per actor feeding the
	// escalation signal. It is advisory only; correctness never depends on
	// it, so in-memory is acceptable.
	mu       sync.Mutex
	failures map[string]int
}

var _ IRiskGateUseCase = (*RiskGateUseCase)(nil)

func NewRiskGateUseCase(
	sessions interfaces.IStepUpSessionRepository,
	credentials interfaces.ICredentialVerifier,
	human interfaces.IHumanVerificationValidator,
	audit interfaces.IAuditSink,
	policy RiskPolicy,
) *RiskGateUseCase {
	if policy.SessionTTL <= 0 {
		policy.SessionTTL = 10 * time.Minute
	}
	if policy.MaxPasswordAttempts <= 0 {
		policy.MaxPasswordAttempts = 3
	}
	return &RiskGateUseCase{
		sessions:    sessions,
		credentials: credentials,
		human:       human,
		audit:       audit,
		policy:      policy,
		failures:    make(map[string]int),
	}
}

func (u *RiskGateUseCase) Evaluate(ctx context.Context, actorID string, action entities.ActionType, documentRef string, payload json.RawMessage) (GateDecision, error) {
	if !u.policy.BindingActions[action] {
		u.record(ctx, actorID, string(action), documentRef, entities.AuditOutcomeAllowed, "not classified as binding")
		return GateDecision{Allowed: true}, nil
	}

	required := []entities.VerificationKind{entities.VerificationPassword}
	if u.policy.ForceHumanVerification || u.recentFailures(actorID) >= u.policy.EscalationFailureThreshold {
		required = append(required, entities.VerificationHuman)
	}

	now := time.Now().UTC()
	session := entities.StepUpSession{
		ID:          uuid.NewString(),
		ActorID:     actorID,
		Action:      action,
		DocumentRef: documentRef,
		Required:    required,
		Payload:     payload,
		ExpiresAt:   now.Add(u.policy.SessionTTL),
		CreatedAt:   now,
	}
	created, err := u.sessions.Create(ctx, session)
	if err != nil {
		return GateDecision{}, err
	}

	log.Printf("[riskgate][usecase] challenge issued session_id=%s actor=%s action=%s doc=%s kinds=%v", created.ID, actorID, action, documentRef, required)
	u.record(ctx, actorID, string(action), documentRef, entities.AuditOutcomeChallenged, "step-up required")
	return GateDecision{Session: &created}, nil
}

func (u *RiskGateUseCase) Satisfy(ctx context.Context, sessionID string, creds Credentials) (entities.StepUpSession, error) {
	session, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.StepUpSession{}, err
	}
	if session.ID == "" || session.Consumed {
		return entities.StepUpSession{}, ErrSessionExpired
	}

	now := time.Now().UTC()
	if session.IsExpired(now) {
		if err := u.sessions.Delete(ctx, session.ID); err != nil {
			log.Printf("[riskgate][usecase] failed discarding expired session session_id=%s err=%v", session.ID, err)
		}
		u.record(ctx, session.ActorID, string(session.Action), session.DocumentRef, entities.AuditOutcomeFailed, "session expired")
		return entities.StepUpSession{}, ErrSessionExpired
	}

	// Human verification is checked first: a rejected token leaves the
	// session open for challenge retry only and never burns a password
	// attempt.
	humanPassed := false
	if session.Requires(entities.VerificationHuman) {
		ok, err := u.human.Validate(ctx, creds.HumanVerificationToken)
		if err != nil {
			return entities.StepUpSession{}, err
		}
		if !ok {
			u.record(ctx, session.ActorID, string(session.Action), session.DocumentRef, entities.AuditOutcomeFailed, "human verification rejected")
			return entities.StepUpSession{}, ErrChallengeRejected
		}
		humanPassed = true
	}

	if session.Requires(entities.VerificationPassword) {
		ok, err := u.credentials.Verify(ctx, session.ActorID, creds.Password)
		if err != nil {
			return entities.StepUpSession{}, err
		}
		if !ok {
			u.noteFailure(session.ActorID)
			updated, err := u.sessions.RecordFailedAttempt(ctx, session.ID)
			if err != nil {
				return entities.StepUpSession{}, err
			}
			if updated.FailedAttempts >= u.policy.MaxPasswordAttempts {
				if err := u.sessions.Delete(ctx, session.ID); err != nil {
					log.Printf("[riskgate][usecase] failed discarding capped session session_id=%s err=%v", session.ID, err)
				}
				u.record(ctx, session.ActorID, string(session.Action), session.DocumentRef, entities.AuditOutcomeFailed, "password attempt cap reached, session discarded")
				return entities.StepUpSession{}, ErrCredentialRejected
			}
			if humanPassed {
				// The token is spent; retire its requirement so the retry
				// only has to get the password right.
				if _, err := u.sessions.SetRequirements(ctx, session.ID, session.Without(entities.VerificationHuman)); err != nil {
					log.Printf("[riskgate][usecase] failed retiring satisfied requirement session_id=%s err=%v", session.ID, err)
				}
			}
			u.record(ctx, session.ActorID, string(session.Action), session.DocumentRef, entities.AuditOutcomeFailed, "password rejected")
			return entities.StepUpSession{}, ErrCredentialRejected
		}
	}

	consumed, err := u.sessions.Consume(ctx, session.ID)
	if err != nil {
		return entities.StepUpSession{}, err
	}
	if consumed.ID == "" {
		// Lost the single-use claim: the proof was already spent.
		return entities.StepUpSession{}, ErrSessionExpired
	}

	u.clearFailures(session.ActorID)
	u.record(ctx, session.ActorID, string(session.Action), session.DocumentRef, entities.AuditOutcomeAllowed, "step-up satisfied")
	log.Printf("[riskgate][usecase] session satisfied session_id=%s actor=%s action=%s", session.ID, session.ActorID, session.Action)
	return consumed, nil
}

func (u *RiskGateUseCase) Cancel(ctx context.Context, sessionID, actorID string) error {
	session, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.ID == "" {
		return ErrSessionExpired
	}
	if session.ActorID != actorID {
		return ErrNotSessionOwner
	}
	if err := u.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}
	u.record(ctx, actorID, string(session.Action), session.DocumentRef, entities.AuditOutcomeFailed, "session cancelled by actor")
	return nil
}

func (u *RiskGateUseCase) record(ctx context.Context, actorID, action, documentRef string, outcome entities.AuditOutcome, detail string) {
	if u.audit == nil {
		return
	}
	ev := entities.AuditEvent{
		ID:          uuid.NewString(),
		ActorID:     actorID,
		Action:      action,
		DocumentRef: documentRef,
		Outcome:     outcome,
		Detail:      detail,
		OccurredAt:  time.Now().UTC(),
	}
	if err := u.audit.Record(ctx, ev); err != nil {
		log.Printf("[riskgate][usecase] audit record failed action=%s doc=%s err=%v", action, documentRef, err)
	}
}

func (u *RiskGateUseCase) recentFailures(actorID string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.failures[actorID]
}

func (u *RiskGateUseCase) noteFailure(actorID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failures[actorID]++
}

func (u *RiskGateUseCase) clearFailures(actorID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.failures, actorID)
}
