package handlers

import (
	"encoding/json"
	"net/http"

	request "comercio_b2b/internal/adapter/http/dto/request"
	response "comercio_b2b/internal/adapter/http/dto/response"
	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase"
	"comercio_b2b/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDecisionPayload = pkg.NewDomainErrorSimple("INVALID_DECISION_INPUT", "Invalid decision payload", http.StatusBadRequest)

// DecisionHandler handles the gated buyer decision flow and the step-up
// challenge round-trips that may suspend it.
//
// A satisfied challenge resumes the captured action by re-running the full
// usecase against current state, not by replaying any intermediate result.

type DecisionHandler struct {
	quotations usecase.IQuotationUseCase
	proofs     usecase.IPaymentProofUseCase
	gate       usecase.IRiskGateUseCase
}

func NewDecisionHandler(quotations usecase.IQuotationUseCase, proofs usecase.IPaymentProofUseCase, gate usecase.IRiskGateUseCase) *DecisionHandler {
	return &DecisionHandler{quotations: quotations, proofs: proofs, gate: gate}
}

type decisionResponseBody struct {
	Quotation   *response.QuotationResponse `json:"quotation,omitempty"`
	OrderNumber string                      `json:"order_number,omitempty"`
	Challenge   *response.ChallengeResponse `json:"challenge,omitempty"`
}

// Decide records the buyer's approve/reject/revise decision. A 202 with a
// challenge body means nothing executed yet; the client satisfies the
// session and the original action resumes server-side.
func (h *DecisionHandler) Decide(c *gin.Context) {
	var payload request.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	result, err := h.quotations.Decide(c.Request.Context(), usecase.DecisionPayload{
		Reference: c.Param("reference"),
		ActorID:   payload.ActorID,
		Kind:      entities.DecisionKind(payload.Kind),
		Comment:   payload.Comment,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if result.Challenge != nil {
		challenge := response.FromStepUpSession(*result.Challenge)
		c.JSON(http.StatusAccepted, decisionResponseBody{Challenge: &challenge})
		return
	}

	q := response.FromQuotation(result.Quotation)
	c.JSON(http.StatusOK, decisionResponseBody{Quotation: &q, OrderNumber: result.OrderNumber})
}

// SatisfyChallenge verifies the supplied proofs against an open step-up
// session and, on success, resumes the suspended action.
func (h *DecisionHandler) SatisfyChallenge(c *gin.Context) {
	var payload request.SatisfyChallengeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	session, err := h.gate.Satisfy(c.Request.Context(), c.Param("session_id"), usecase.Credentials{
		Password:               payload.Password,
		HumanVerificationToken: payload.HumanVerificationToken,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	h.resume(c, session)
}

// resume re-dispatches the original action captured in the consumed session.
func (h *DecisionHandler) resume(c *gin.Context, session entities.StepUpSession) {
	switch session.Action {
	case entities.ActionQuotationApproval, entities.ActionQuotationDecision:
		var payload usecase.DecisionPayload
		if err := json.Unmarshal(session.Payload, &payload); err != nil {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "Corrupt session payload", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		result, err := h.quotations.ExecuteDecision(c.Request.Context(), payload)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		q := response.FromQuotation(result.Quotation)
		c.JSON(http.StatusOK, decisionResponseBody{Quotation: &q, OrderNumber: result.OrderNumber})

	case entities.ActionPaymentProof:
		var payload usecase.ProofPayload
		if err := json.Unmarshal(session.Payload, &payload); err != nil {
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "Corrupt session payload", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		result, err := h.proofs.ExecuteSubmit(c.Request.Context(), payload)
		if err != nil {
			writeDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.FromSalesOrder(result.Order))

	default:
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Unknown session action", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// CancelChallenge explicitly invalidates an open session. Only the owning
// actor may cancel; abandoned sessions are reclaimed by expiry.
func (h *DecisionHandler) CancelChallenge(c *gin.Context) {
	var payload request.CancelChallengeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	if err := h.gate.Cancel(c.Request.Context(), c.Param("session_id"), payload.ActorID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
