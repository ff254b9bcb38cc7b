package handlers

import (
	"context"
	"net/http"

	request "comercio_b2b/internal/adapter/http/dto/request"
	response "comercio_b2b/internal/adapter/http/dto/response"
	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase"
	"comercio_b2b/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for the quotation lifecycle.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// CreateQuotation opens a new draft with price and availability snapshots
// resolved per line item.
func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	lines := make([]usecase.DraftLine, 0, len(payload.Items))
	for _, it := range payload.Items {
		lines = append(lines, usecase.DraftLine{ItemRef: it.ItemRef, Quantity: it.Quantity})
	}

	q, err := h.usecase.CreateDraft(c.Request.Context(), payload.ResolveAccountID(), lines)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// SubmitQuotation runs the draft -> submitted transition. When the
// reconciler flags items and the caller has not confirmed, the 409 body
// carries the proposed adjustments and the document is left unchanged.
func (h *QuotationHandler) SubmitQuotation(c *gin.Context) {
	var payload request.SubmitQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Submit(c.Request.Context(), c.Param("reference"), payload.ActorID, payload.ConfirmAdjustments)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) IssueQuotation(c *gin.Context) {
	h.issueWith(c, h.usecase.Issue)
}

func (h *QuotationHandler) ReissueQuotation(c *gin.Context) {
	h.issueWith(c, h.usecase.Reissue)
}

func (h *QuotationHandler) issueWith(
	c *gin.Context,
	issue func(ctx context.Context, reference, actorID string, terms usecase.IssueTerms) (entities.Quotation, error),
) {
	var payload request.IssueQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	terms := usecase.IssueTerms{Tax: payload.Tax, Shipping: payload.Shipping, Discount: payload.Discount}
	q, err := issue(c.Request.Context(), c.Param("reference"), payload.ActorID, terms)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) FlagAdjustment(c *gin.Context) {
	var payload request.FlagAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.FlagAdjustmentRequired(c.Request.Context(), c.Param("reference"), payload.ActorID, payload.Comment)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotation(q))
}
