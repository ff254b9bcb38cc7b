package interfaces

import (
	"context"

	"comercio_b2b/internal/domain/entities"
)

// IStepUpSessionRepository abstracts DynamoDB persistence for StepUpSession.
//
// Consume claims the session with a conditional write on consumed=false so
// a satisfied challenge can never authorize a second action; a lost claim
// returns the zero StepUpSession with a nil error.

type IStepUpSessionRepository interface {
	Create(ctx context.Context, s entities.StepUpSession) (entities.StepUpSession, error)
	GetByID(ctx context.Context, id string) (entities.StepUpSession, error)
	Consume(ctx context.Context, id string) (entities.StepUpSession, error)
	RecordFailedAttempt(ctx context.Context, id string) (entities.StepUpSession, error)
	// SetRequirements rewrites the outstanding verification kinds of an
	// unconsumed session, e.g. after a spent single-use token passed while
	// another proof failed.
	SetRequirements(ctx context.Context, id string, required []entities.VerificationKind) (entities.StepUpSession, error)
	Delete(ctx context.Context, id string) error
}
