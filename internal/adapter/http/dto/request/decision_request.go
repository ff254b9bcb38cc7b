package request

// DecisionRequest is the buyer's decision on an issued quotation.
type DecisionRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
	Kind    string `json:"kind" binding:"required"`
	Comment string `json:"comment"`
}

// SatisfyChallengeRequest carries the proofs for an open step-up session.
// Only the kinds the session requires are checked.
type SatisfyChallengeRequest struct {
	Password               string `json:"password"`
	HumanVerificationToken string `json:"human_verification_token"`
}

// CancelChallengeRequest explicitly invalidates an open session.
type CancelChallengeRequest struct {
	ActorID string `json:"actor_id" binding:"required"`
}
