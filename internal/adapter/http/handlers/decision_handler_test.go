package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comercio_b2b/internal/adapter/http/handlers/mocks"
	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type decisionFixture struct {
	quotations *mocks.MockIQuotationUseCase
	proofs     *mocks.MockIPaymentProofUseCase
	gate       *mocks.MockIRiskGateUseCase
	router     *gin.Engine
}

func newDecisionFixture(t *testing.T) decisionFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	quotations := mocks.NewMockIQuotationUseCase(ctrl)
	proofs := mocks.NewMockIPaymentProofUseCase(ctrl)
	gate := mocks.NewMockIRiskGateUseCase(ctrl)
	h := NewDecisionHandler(quotations, proofs, gate)

	r := gin.New()
	r.POST("/v1/quotations/:reference/decision", h.Decide)
	r.POST("/v1/challenges/:session_id/satisfy", h.SatisfyChallenge)
	r.DELETE("/v1/challenges/:session_id", h.CancelChallenge)

	return decisionFixture{quotations: quotations, proofs: proofs, gate: gate, router: r}
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDecisionHandler_Decide(t *testing.T) {
	t.Run("challenge suspends with 202", func(t *testing.T) {
		f := newDecisionFixture(t)

		session := entities.StepUpSession{
			ID:          "sess-1",
			ActorID:     "acc-1",
			Action:      entities.ActionQuotationApproval,
			DocumentRef: "QT-AAAA1111",
			Required:    []entities.VerificationKind{entities.VerificationPassword},
			ExpiresAt:   time.Now().UTC().Add(10 * time.Minute),
		}
		f.quotations.EXPECT().Decide(gomock.Any(), usecase.DecisionPayload{
			Reference: "QT-AAAA1111",
			ActorID:   "acc-1",
			Kind:      entities.DecisionApprove,
		}).Return(usecase.DecisionResult{Challenge: &session}, nil)

		w := postJSON(t, f.router, "/v1/quotations/QT-AAAA1111/decision", `{"actor_id":"acc-1","kind":"approve"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d body=%s", w.Code, w.Body.String())
		}
		var resp struct {
			Challenge struct {
				SessionID string   `json:"session_id"`
				Required  []string `json:"required"`
			} `json:"challenge"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Challenge.SessionID != "sess-1" || len(resp.Challenge.Required) != 1 {
			t.Fatalf("unexpected challenge body: %+v", resp.Challenge)
		}
	})

	t.Run("executed approval returns quotation and order number", func(t *testing.T) {
		f := newDecisionFixture(t)

		q := sampleQuotation(entities.QuotationStatusApproved)
		q.LinkedOrderID = "SO-BBBB2222"
		f.quotations.EXPECT().Decide(gomock.Any(), gomock.Any()).
			Return(usecase.DecisionResult{Quotation: q, OrderNumber: "SO-BBBB2222"}, nil)

		w := postJSON(t, f.router, "/v1/quotations/QT-AAAA1111/decision", `{"actor_id":"acc-1","kind":"approve"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			OrderNumber string `json:"order_number"`
			Quotation   struct {
				Status string `json:"status"`
			} `json:"quotation"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.OrderNumber != "SO-BBBB2222" || resp.Quotation.Status != "approved" {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("retried approval reports existing order", func(t *testing.T) {
		f := newDecisionFixture(t)

		f.quotations.EXPECT().Decide(gomock.Any(), gomock.Any()).
			Return(usecase.DecisionResult{}, &usecase.AlreadyFinalizedError{Status: entities.QuotationStatusApproved, OrderNumber: "SO-BBBB2222"})

		w := postJSON(t, f.router, "/v1/quotations/QT-AAAA1111/decision", `{"actor_id":"acc-1","kind":"approve"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "ALREADY_FINALIZED" || resp.Details["order_number"] != "SO-BBBB2222" {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		f := newDecisionFixture(t)
		w := postJSON(t, f.router, "/v1/quotations/QT-AAAA1111/decision", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDecisionHandler_SatisfyChallenge(t *testing.T) {
	t.Run("satisfied decision session resumes the decision", func(t *testing.T) {
		f := newDecisionFixture(t)

		payload, _ := json.Marshal(usecase.DecisionPayload{Reference: "QT-AAAA1111", ActorID: "acc-1", Kind: entities.DecisionApprove})
		consumed := entities.StepUpSession{
			ID:       "sess-1",
			ActorID:  "acc-1",
			Action:   entities.ActionQuotationApproval,
			Payload:  payload,
			Consumed: true,
		}
		f.gate.EXPECT().Satisfy(gomock.Any(), "sess-1", usecase.Credentials{Password: "secret"}).Return(consumed, nil)

		q := sampleQuotation(entities.QuotationStatusApproved)
		f.quotations.EXPECT().ExecuteDecision(gomock.Any(), usecase.DecisionPayload{
			Reference: "QT-AAAA1111",
			ActorID:   "acc-1",
			Kind:      entities.DecisionApprove,
		}).Return(usecase.DecisionResult{Quotation: q, OrderNumber: "SO-CCCC3333"}, nil)

		w := postJSON(t, f.router, "/v1/challenges/sess-1/satisfy", `{"password":"secret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("satisfied proof session resumes the submission", func(t *testing.T) {
		f := newDecisionFixture(t)

		payload, _ := json.Marshal(usecase.ProofPayload{OrderNumber: "SO-CCCC3333", ActorID: "acc-1", Amount: 100, AttachmentRef: "ref"})
		consumed := entities.StepUpSession{
			ID:       "sess-2",
			ActorID:  "acc-1",
			Action:   entities.ActionPaymentProof,
			Payload:  payload,
			Consumed: true,
		}
		f.gate.EXPECT().Satisfy(gomock.Any(), "sess-2", gomock.Any()).Return(consumed, nil)
		f.proofs.EXPECT().ExecuteSubmit(gomock.Any(), usecase.ProofPayload{
			OrderNumber:   "SO-CCCC3333",
			ActorID:       "acc-1",
			Amount:        100,
			AttachmentRef: "ref",
		}).Return(usecase.ProofResult{Order: entities.SalesOrder{OrderNumber: "SO-CCCC3333"}}, nil)

		w := postJSON(t, f.router, "/v1/challenges/sess-2/satisfy", `{"password":"secret"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newDecisionFixture(t)
		f.gate.EXPECT().Satisfy(gomock.Any(), "sess-1", gomock.Any()).Return(entities.StepUpSession{}, usecase.ErrCredentialRejected)

		w := postJSON(t, f.router, "/v1/challenges/sess-1/satisfy", `{"password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		f := newDecisionFixture(t)
		f.gate.EXPECT().Satisfy(gomock.Any(), "sess-1", gomock.Any()).Return(entities.StepUpSession{}, usecase.ErrSessionExpired)

		w := postJSON(t, f.router, "/v1/challenges/sess-1/satisfy", `{"password":"secret"}`)
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})
}

func TestDecisionHandler_CancelChallenge(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		f := newDecisionFixture(t)
		f.gate.EXPECT().Cancel(gomock.Any(), "sess-1", "acc-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/challenges/sess-1", bytes.NewBufferString(`{"actor_id":"acc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("non owner forbidden", func(t *testing.T) {
		f := newDecisionFixture(t)
		f.gate.EXPECT().Cancel(gomock.Any(), "sess-1", "acc-2").Return(usecase.ErrNotSessionOwner)

		req := httptest.NewRequest(http.MethodDelete, "/v1/challenges/sess-1", bytes.NewBufferString(`{"actor_id":"acc-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
