package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func sampleQuotation(status entities.QuotationStatus) entities.Quotation {
	now := time.Now().UTC()
	q := entities.Quotation{
		Reference: "QT-AAAA1111",
		AccountID: "acc-1",
		Items: []entities.LineItem{
			{ItemRef: "item-1", Name: "Widget", Quantity: 2, UnitPrice: 25, AvailableAtCreation: 10},
		},
		Status:     status,
		ValidFrom:  now,
		ValidUntil: now.Add(14 * 24 * time.Hour),
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	q.Recalculate()
	return q
}

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().CreateDraft(gomock.Any(), "acc-1", []usecase.DraftLine{{ItemRef: "item-1", Quantity: 2}}).
			Return(sampleQuotation(entities.QuotationStatusDraft), nil)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		body := `{"account_id":"acc-1","items":[{"item_ref":"item-1","quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["reference"] != "QT-AAAA1111" || resp["status"] != "draft" {
			t.Fatalf("unexpected body: %v", resp)
		}
		if resp["grand_total"].(float64) != 50 {
			t.Fatalf("unexpected grand total: %v", resp["grand_total"])
		}
	})

	t.Run("unknown catalog item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Quotation{}, usecase.ErrUnknownCatalogItem)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		body := `{"account_id":"acc-1","items":[{"item_ref":"ghost","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().GetByReference(gomock.Any(), "QT-GHOST").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		r := gin.New()
		r.GET("/v1/quotations/:reference", h.GetQuotation)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/QT-GHOST", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lapsed validity reads as expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		q := sampleQuotation(entities.QuotationStatusIssued)
		q.ValidUntil = time.Now().UTC().Add(-time.Hour)
		uc.EXPECT().GetByReference(gomock.Any(), q.Reference).Return(q, nil)

		r := gin.New()
		r.GET("/v1/quotations/:reference", h.GetQuotation)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/"+q.Reference, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != "expired" {
			t.Fatalf("expected derived expired status, got %v", resp["status"])
		}
	})
}

func TestQuotationHandler_SubmitQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("availability conflict carries adjustments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), "QT-AAAA1111", "acc-1", false).
			Return(entities.Quotation{}, &usecase.AvailabilityConflictError{Adjustments: []usecase.ItemAdjustment{
				{ItemRef: "item-1", Requested: 5, Available: 2, Action: usecase.AdjustmentActionAdjusted},
			}})

		r := gin.New()
		r.POST("/v1/quotations/:reference/submit", h.SubmitQuotation)

		body := `{"actor_id":"acc-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/QT-AAAA1111/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Code    string `json:"code"`
			Details struct {
				Adjustments []usecase.ItemAdjustment `json:"adjustments"`
			} `json:"details"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "AVAILABILITY_CONFLICT" {
			t.Fatalf("unexpected code: %s", resp.Code)
		}
		if len(resp.Details.Adjustments) != 1 || resp.Details.Adjustments[0].Available != 2 {
			t.Fatalf("unexpected adjustments: %+v", resp.Details.Adjustments)
		}
	})

	t.Run("confirmed submission succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), "QT-AAAA1111", "acc-1", true).
			Return(sampleQuotation(entities.QuotationStatusSubmitted), nil)

		r := gin.New()
		r.POST("/v1/quotations/:reference/submit", h.SubmitQuotation)

		body := `{"actor_id":"acc-1","confirm_adjustments":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/QT-AAAA1111/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_IssueQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition carries from and to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().Issue(gomock.Any(), "QT-AAAA1111", "staff-1", usecase.IssueTerms{Tax: 10}).
			Return(entities.Quotation{}, &usecase.IllegalTransitionError{From: entities.QuotationStatusDraft, To: entities.QuotationStatusIssued})

		r := gin.New()
		r.PATCH("/v1/quotations/:reference/issue", h.IssueQuotation)

		body := `{"actor_id":"staff-1","tax":10}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/QT-AAAA1111/issue", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

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
		if resp.Code != "ILLEGAL_TRANSITION" || resp.Details["from"] != "draft" || resp.Details["to"] != "issued" {
			t.Fatalf("unexpected body: %+v", resp)
		}
	})

	t.Run("reissue delegates with terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().Reissue(gomock.Any(), "QT-AAAA1111", "staff-1", usecase.IssueTerms{Tax: 5, Shipping: 2}).
			Return(sampleQuotation(entities.QuotationStatusIssued), nil)

		r := gin.New()
		r.PATCH("/v1/quotations/:reference/reissue", h.ReissueQuotation)

		body := `{"actor_id":"staff-1","tax":5,"shipping":2}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/QT-AAAA1111/reissue", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_FlagAdjustment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		uc.EXPECT().FlagAdjustmentRequired(gomock.Any(), "QT-AAAA1111", "staff-1", "missing specs").
			Return(entities.Quotation{}, errors.New("dynamodb unavailable"))

		r := gin.New()
		r.PATCH("/v1/quotations/:reference/flag-adjustment", h.FlagAdjustment)

		body := `{"actor_id":"staff-1","comment":"missing specs"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/QT-AAAA1111/flag-adjustment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
