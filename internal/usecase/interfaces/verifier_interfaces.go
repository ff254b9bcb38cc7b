package interfaces

import "context"

// ICredentialVerifier checks an actor's identity against a supplied secret
// (password re-confirmation). Opaque match/no-match: a false return is a
// wrong secret, an error is an infrastructure failure.

type ICredentialVerifier interface {
	Verify(ctx context.Context, actorID, secret string) (bool, error)
}

// IHumanVerificationValidator checks a client-supplied challenge token
// against a third-party verifier. Opaque boolean result.

type IHumanVerificationValidator interface {
	Validate(ctx context.Context, token string) (bool, error)
}
