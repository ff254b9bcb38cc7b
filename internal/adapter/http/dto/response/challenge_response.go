package response

import (
	"time"

	"comercio_b2b/internal/domain/entities"
)

// ChallengeResponse tells the client which verification kinds are still
// outstanding before the suspended action can execute.
type ChallengeResponse struct {
	SessionID   string    `json:"session_id"`
	Action      string    `json:"action"`
	DocumentRef string    `json:"document_ref"`
	Required    []string  `json:"required"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromStepUpSession(s entities.StepUpSession) ChallengeResponse {
	required := make([]string, 0, len(s.Required))
	for _, k := range s.Required {
		required = append(required, string(k))
	}
	return ChallengeResponse{
		SessionID:   s.ID,
		Action:      string(s.Action),
		DocumentRef: s.DocumentRef,
		Required:    required,
		ExpiresAt:   s.ExpiresAt,
	}
}
