package handlers

import (
	"net/http"

	request "comercio_b2b/internal/adapter/http/dto/request"
	response "comercio_b2b/internal/adapter/http/dto/response"
	"comercio_b2b/internal/usecase"
	"comercio_b2b/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProofPayload = pkg.NewDomainErrorSimple("INVALID_PROOF_INPUT", "Invalid payment proof payload", http.StatusBadRequest)

// PaymentProofHandler handles the gated payment-proof side-channel on a
// sales order.

type PaymentProofHandler struct {
	usecase usecase.IPaymentProofUseCase
}

func NewPaymentProofHandler(uc usecase.IPaymentProofUseCase) *PaymentProofHandler {
	return &PaymentProofHandler{usecase: uc}
}

type proofResponseBody struct {
	Order     *response.OrderResponse     `json:"order,omitempty"`
	ProofID   string                      `json:"proof_id,omitempty"`
	Challenge *response.ChallengeResponse `json:"challenge,omitempty"`
}

// SubmitPaymentProof validates the claim against the current outstanding
// balance before anything is stored, then runs it through the risk gate.
func (h *PaymentProofHandler) SubmitPaymentProof(c *gin.Context) {
	var payload request.PaymentProofRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProofPayload.HTTPStatus, errInvalidProofPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Submit(c.Request.Context(), usecase.ProofPayload{
		OrderNumber:   c.Param("order_number"),
		ActorID:       payload.ActorID,
		Amount:        payload.Amount,
		AttachmentRef: payload.AttachmentRef,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if result.Challenge != nil {
		challenge := response.FromStepUpSession(*result.Challenge)
		c.JSON(http.StatusAccepted, proofResponseBody{Challenge: &challenge})
		return
	}

	order := response.FromSalesOrder(result.Order)
	c.JSON(http.StatusCreated, proofResponseBody{Order: &order, ProofID: result.Proof.ID})
}

func (h *PaymentProofHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSalesOrder(order))
}
