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

func newProofHandler(t *testing.T) (*mocks.MockIPaymentProofUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIPaymentProofUseCase(ctrl)
	h := NewPaymentProofHandler(uc)

	r := gin.New()
	r.POST("/v1/orders/:order_number/payment-proofs", h.SubmitPaymentProof)
	r.GET("/v1/orders/:order_number", h.GetOrder)
	return uc, r
}

func TestPaymentProofHandler_SubmitPaymentProof(t *testing.T) {
	t.Run("stored proof returns 201 with proof id", func(t *testing.T) {
		uc, r := newProofHandler(t)

		order := entities.SalesOrder{
			OrderNumber:        "SO-AAAA1111",
			GrandTotal:         500,
			OutstandingBalance: 500,
			PaymentProofs:      []entities.PaymentProof{{ID: "proof-1", Amount: 200}},
			Version:            2,
			CreatedAt:          time.Now().UTC(),
		}
		uc.EXPECT().Submit(gomock.Any(), usecase.ProofPayload{
			OrderNumber:   "SO-AAAA1111",
			ActorID:       "acc-1",
			Amount:        200,
			AttachmentRef: "s3://proofs/1.pdf",
		}).Return(usecase.ProofResult{Order: order, Proof: entities.PaymentProof{ID: "proof-1", Amount: 200}}, nil)

		body := `{"actor_id":"acc-1","amount":200,"attachment_ref":"s3://proofs/1.pdf"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/SO-AAAA1111/payment-proofs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp struct {
			ProofID string `json:"proof_id"`
			Order   struct {
				OutstandingBalance float64 `json:"outstanding_balance"`
			} `json:"order"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ProofID != "proof-1" {
			t.Fatalf("unexpected proof id: %s", resp.ProofID)
		}
		if resp.Order.OutstandingBalance != 500 {
			t.Fatalf("balance must not move on unverified proof, got %.2f", resp.Order.OutstandingBalance)
		}
	})

	t.Run("challenge suspends with 202", func(t *testing.T) {
		uc, r := newProofHandler(t)

		session := entities.StepUpSession{
			ID:          "sess-1",
			Action:      entities.ActionPaymentProof,
			DocumentRef: "SO-AAAA1111",
			Required:    []entities.VerificationKind{entities.VerificationPassword},
		}
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.ProofResult{Challenge: &session}, nil)

		body := `{"actor_id":"acc-1","amount":200,"attachment_ref":"ref"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/SO-AAAA1111/payment-proofs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("amount exceeding balance maps to 422", func(t *testing.T) {
		uc, r := newProofHandler(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.ProofResult{}, usecase.ErrAmountExceedsBalance)

		body := `{"actor_id":"acc-1","amount":9999,"attachment_ref":"ref"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/SO-AAAA1111/payment-proofs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var resp struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "AMOUNT_EXCEEDS_BALANCE" {
			t.Fatalf("unexpected code: %s", resp.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, r := newProofHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/SO-AAAA1111/payment-proofs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentProofHandler_GetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, r := newProofHandler(t)
		uc.EXPECT().GetOrder(gomock.Any(), "SO-GHOST").Return(entities.SalesOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/SO-GHOST", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes proofs", func(t *testing.T) {
		uc, r := newProofHandler(t)

		order := entities.SalesOrder{
			OrderNumber:        "SO-AAAA1111",
			QuotationID:        "QT-AAAA1111",
			GrandTotal:         500,
			OutstandingBalance: 500,
			PaymentProofs:      []entities.PaymentProof{{ID: "proof-1", Amount: 200, SubmittedBy: "acc-1"}},
			Version:            2,
		}
		uc.EXPECT().GetOrder(gomock.Any(), "SO-AAAA1111").Return(order, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/SO-AAAA1111", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			PaymentProofs []struct {
				ID       string `json:"id"`
				Verified bool   `json:"verified"`
			} `json:"payment_proofs"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp.PaymentProofs) != 1 || resp.PaymentProofs[0].ID != "proof-1" || resp.PaymentProofs[0].Verified {
			t.Fatalf("unexpected proofs: %+v", resp.PaymentProofs)
		}
	})
}
