package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"comercio_b2b/internal/domain/entities"
	mock_interfaces "comercio_b2b/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestGate(t *testing.T, policy RiskPolicy) (*RiskGateUseCase, *mock_interfaces.MockIStepUpSessionRepository, *mock_interfaces.MockICredentialVerifier, *mock_interfaces.MockIHumanVerificationValidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	sessions := mock_interfaces.NewMockIStepUpSessionRepository(ctrl)
	creds := mock_interfaces.NewMockICredentialVerifier(ctrl)
	human := mock_interfaces.NewMockIHumanVerificationValidator(ctrl)
	return NewRiskGateUseCase(sessions, creds, human, nil, policy), sessions, creds, human
}

func TestRiskGateUseCase_Evaluate(t *testing.T) {
	payload := json.RawMessage(`{"reference":"QT-1"}`)

	t.Run("non binding action runs immediately", func(t *testing.T) {
		policy := DefaultRiskPolicy()
		policy.BindingActions[entities.ActionPaymentProof] = false
		gate, _, _, _ := newTestGate(t, policy)

		decision, err := gate.Evaluate(context.Background(), "acc-1", entities.ActionPaymentProof, "SO-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !decision.Allowed || decision.Session != nil {
			t.Fatalf("expected allowed without session, got %+v", decision)
		}
	})

	t.Run("non binding decision runs immediately by default", func(t *testing.T) {
		gate, _, _, _ := newTestGate(t, DefaultRiskPolicy())

		decision, err := gate.Evaluate(context.Background(), "acc-1", entities.ActionQuotationDecision, "QT-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !decision.Allowed || decision.Session != nil {
			t.Fatalf("expected allowed without session, got %+v", decision)
		}
	})

	t.Run("binding action suspends behind password challenge", func(t *testing.T) {
		gate, sessions, _, _ := newTestGate(t, DefaultRiskPolicy())

		sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StepUpSession) (entities.StepUpSession, error) {
				if s.ActorID != "acc-1" || s.Action != entities.ActionQuotationApproval || s.DocumentRef != "QT-1" {
					t.Fatalf("unexpected session: %+v", s)
				}
				if len(s.Required) != 1 || s.Required[0] != entities.VerificationPassword {
					t.Fatalf("expected password-only challenge, got %v", s.Required)
				}
				if string(s.Payload) != string(payload) {
					t.Fatalf("payload not captured: %s", s.Payload)
				}
				return s, nil
			})

		decision, err := gate.Evaluate(context.Background(), "acc-1", entities.ActionQuotationApproval, "QT-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Allowed || decision.Session == nil {
			t.Fatalf("expected challenge, got %+v", decision)
		}
	})

	t.Run("forced policy escalates to human verification", func(t *testing.T) {
		policy := DefaultRiskPolicy()
		policy.ForceHumanVerification = true
		gate, sessions, _, _ := newTestGate(t, policy)

		sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StepUpSession) (entities.StepUpSession, error) {
				if !s.Requires(entities.VerificationHuman) || !s.Requires(entities.VerificationPassword) {
					t.Fatalf("expected escalated challenge, got %v", s.Required)
				}
				return s, nil
			})

		if _, err := gate.Evaluate(context.Background(), "acc-1", entities.ActionQuotationApproval, "QT-1", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeated failures escalate subsequent challenges", func(t *testing.T) {
		policy := DefaultRiskPolicy()
		policy.EscalationFailureThreshold = 2
		gate, sessions, creds, _ := newTestGate(t, policy)

		session := entities.StepUpSession{
			ID:        "sess-1",
			ActorID:   "acc-1",
			Action:    entities.ActionQuotationApproval,
			Required:  []entities.VerificationKind{entities.VerificationPassword},
			ExpiresAt: time.Now().UTC().Add(time.Minute),
		}

		for i := 1; i <= 2; i++ {
			sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(session, nil)
			creds.EXPECT().Verify(gomock.Any(), "acc-1", "wrong").Return(false, nil)
			sessions.EXPECT().RecordFailedAttempt(gomock.Any(), "sess-1").Return(entities.StepUpSession{ID: "sess-1", FailedAttempts: 1}, nil)
			if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "wrong"}); !errors.Is(err, ErrCredentialRejected) {
				t.Fatalf("attempt %d: expected ErrCredentialRejected, got %v", i, err)
			}
		}

		sessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.StepUpSession) (entities.StepUpSession, error) {
				if !s.Requires(entities.VerificationHuman) {
					t.Fatalf("expected human verification after repeated failures, got %v", s.Required)
				}
				return s, nil
			})

		if _, err := gate.Evaluate(context.Background(), "acc-1", entities.ActionQuotationApproval, "QT-1", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRiskGateUseCase_Satisfy(t *testing.T) {
	active := func() entities.StepUpSession {
		return entities.StepUpSession{
			ID:        "sess-1",
			ActorID:   "acc-1",
			Action:    entities.ActionQuotationApproval,
			Required:  []entities.VerificationKind{entities.VerificationPassword},
			ExpiresAt: time.Now().UTC().Add(time.Minute),
		}
	}

	t.Run("correct password consumes session", func(t *testing.T) {
		gate, sessions, creds, _ := newTestGate(t, DefaultRiskPolicy())

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(active(), nil)
		creds.EXPECT().Verify(gomock.Any(), "acc-1", "secret").Return(true, nil)
		consumed := active()
		consumed.Consumed = true
		sessions.EXPECT().Consume(gomock.Any(), "sess-1").Return(consumed, nil)

		got, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Consumed {
			t.Fatal("expected consumed session returned")
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		gate, sessions, _, _ := newTestGate(t, DefaultRiskPolicy())
		sessions.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.StepUpSession{}, nil)

		if _, err := gate.Satisfy(context.Background(), "missing", Credentials{}); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("already consumed session cannot authorize twice", func(t *testing.T) {
		gate, sessions, _, _ := newTestGate(t, DefaultRiskPolicy())
		spent := active()
		spent.Consumed = true
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(spent, nil)

		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "secret"}); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("expired session is discarded", func(t *testing.T) {
		gate, sessions, _, _ := newTestGate(t, DefaultRiskPolicy())
		lapsed := active()
		lapsed.ExpiresAt = time.Now().UTC().Add(-time.Minute)
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(lapsed, nil)
		sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "secret"}); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("third wrong password discards the session", func(t *testing.T) {
		gate, sessions, creds, _ := newTestGate(t, DefaultRiskPolicy())

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(active(), nil)
		creds.EXPECT().Verify(gomock.Any(), "acc-1", "wrong").Return(false, nil)
		sessions.EXPECT().RecordFailedAttempt(gomock.Any(), "sess-1").Return(entities.StepUpSession{ID: "sess-1", FailedAttempts: 3}, nil)
		sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "wrong"}); !errors.Is(err, ErrCredentialRejected) {
			t.Fatalf("expected ErrCredentialRejected, got %v", err)
		}

		// The discarded session now reads as gone.
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.StepUpSession{}, nil)
		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "secret"}); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired after discard, got %v", err)
		}
	})

	t.Run("rejected human token does not burn a password attempt", func(t *testing.T) {
		gate, sessions, _, human := newTestGate(t, DefaultRiskPolicy())
		escalated := active()
		escalated.Required = []entities.VerificationKind{entities.VerificationPassword, entities.VerificationHuman}

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(escalated, nil)
		human.EXPECT().Validate(gomock.Any(), "bad-token").Return(false, nil)

		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "secret", HumanVerificationToken: "bad-token"}); !errors.Is(err, ErrChallengeRejected) {
			t.Fatalf("expected ErrChallengeRejected, got %v", err)
		}
	})

	t.Run("passed human token is retired when the password fails", func(t *testing.T) {
		gate, sessions, creds, human := newTestGate(t, DefaultRiskPolicy())
		escalated := active()
		escalated.Required = []entities.VerificationKind{entities.VerificationPassword, entities.VerificationHuman}

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(escalated, nil)
		human.EXPECT().Validate(gomock.Any(), "good-token").Return(true, nil)
		creds.EXPECT().Verify(gomock.Any(), "acc-1", "wrong").Return(false, nil)
		sessions.EXPECT().RecordFailedAttempt(gomock.Any(), "sess-1").Return(entities.StepUpSession{ID: "sess-1", FailedAttempts: 1}, nil)
		sessions.EXPECT().SetRequirements(gomock.Any(), "sess-1", []entities.VerificationKind{entities.VerificationPassword}).
			Return(escalated, nil)

		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "wrong", HumanVerificationToken: "good-token"}); !errors.Is(err, ErrCredentialRejected) {
			t.Fatalf("expected ErrCredentialRejected, got %v", err)
		}

		// The retry needs only the password; no fresh token is demanded.
		passwordOnly := active()
		passwordOnly.FailedAttempts = 1
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(passwordOnly, nil)
		creds.EXPECT().Verify(gomock.Any(), "acc-1", "secret").Return(true, nil)
		consumed := passwordOnly
		consumed.Consumed = true
		sessions.EXPECT().Consume(gomock.Any(), "sess-1").Return(consumed, nil)

		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "secret"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost single-use claim reads as spent", func(t *testing.T) {
		gate, sessions, creds, _ := newTestGate(t, DefaultRiskPolicy())

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(active(), nil)
		creds.EXPECT().Verify(gomock.Any(), "acc-1", "secret").Return(true, nil)
		sessions.EXPECT().Consume(gomock.Any(), "sess-1").Return(entities.StepUpSession{}, nil)

		if _, err := gate.Satisfy(context.Background(), "sess-1", Credentials{Password: "secret"}); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})
}

func TestRiskGateUseCase_Cancel(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		gate, sessions, _, _ := newTestGate(t, DefaultRiskPolicy())
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.StepUpSession{ID: "sess-1", ActorID: "acc-1"}, nil)
		sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

		if err := gate.Cancel(context.Background(), "sess-1", "acc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non owner rejected", func(t *testing.T) {
		gate, sessions, _, _ := newTestGate(t, DefaultRiskPolicy())
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.StepUpSession{ID: "sess-1", ActorID: "acc-1"}, nil)

		if err := gate.Cancel(context.Background(), "sess-1", "acc-2"); !errors.Is(err, ErrNotSessionOwner) {
			t.Fatalf("expected ErrNotSessionOwner, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		gate, sessions, _, _ := newTestGate(t, DefaultRiskPolicy())
		sessions.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.StepUpSession{}, nil)

		if err := gate.Cancel(context.Background(), "missing", "acc-1"); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("expected ErrSessionExpired, got %v", err)
		}
	})
}
