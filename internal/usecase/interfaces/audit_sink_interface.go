package interfaces

import (
	"context"

	"comercio_b2b/internal/domain/entities"
)

// IAuditSink receives a compliance record for every state transition and
// every risk-gate decision. Callers treat it as fire-and-forget: sink
// errors are logged and never block the core operation.

type IAuditSink interface {
	Record(ctx context.Context, ev entities.AuditEvent) error
}
