package verify

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"comercio_b2b/internal/usecase/interfaces"
)

var ErrMissingHumanVerifierSecret = errors.New("missing HUMAN_VERIFIER_SECRET")

const defaultHumanVerifierEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// HumanVerifier validates client-supplied challenge tokens against a
// recaptcha-style siteverify endpoint.
//
// Env:
//   - HUMAN_VERIFIER_SECRET (required unless mock mode)
//   - HUMAN_VERIFIER_ENDPOINT (optional override, e.g. a local stub)
//   - HUMAN_VERIFIER_MOCK=true accepts any non-empty token (local/dev)

type HumanVerifier struct {
	httpClient *http.Client
	endpoint   string
	secret     string
	mockMode   bool
}

var _ interfaces.IHumanVerificationValidator = (*HumanVerifier)(nil)

func NewHumanVerifier(secret string) (*HumanVerifier, error) {
	if isHumanVerifierMockEnabled() {
		log.Printf("[verify][human] mock mode enabled")
		return &HumanVerifier{mockMode: true}, nil
	}
	if secret == "" {
		log.Printf("[verify][human] missing HUMAN_VERIFIER_SECRET")
		return nil, ErrMissingHumanVerifierSecret
	}

	endpoint := os.Getenv("HUMAN_VERIFIER_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultHumanVerifierEndpoint
	}
	return &HumanVerifier{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
		secret:     secret,
	}, nil
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *HumanVerifier) Validate(ctx context.Context, token string) (bool, error) {
	token = strings.TrimSpace(token)
	if v.mockMode {
		return token != "", nil
	}
	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		log.Printf("[verify][human] verifier unreachable err=%v", err)
		return false, err
	}
	defer resp.Body.Close()

	var body siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, err
	}
	if !body.Success {
		log.Printf("[verify][human] token rejected codes=%v", body.ErrorCodes)
	}
	return body.Success, nil
}

func isHumanVerifierMockEnabled() bool {
	return strings.EqualFold(os.Getenv("HUMAN_VERIFIER_MOCK"), "true")
}
