package handlers

import (
	"errors"
	"net/http"

	"comercio_b2b/internal/usecase"
	"comercio_b2b/pkg"

	"github.com/gin-gonic/gin"
)

// writeDomainError maps the usecase error taxonomy onto HTTP responses.
// Every rejection body carries enough structured detail to drive the
// remediation UI without a second round-trip.
func writeDomainError(c *gin.Context, err error) {
	var availability *usecase.AvailabilityConflictError
	if errors.As(err, &availability) {
		appErr := pkg.NewDomainErrorSimple("AVAILABILITY_CONFLICT", "Availability adjustments required", http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{"adjustments": availability.Adjustments}))
		return
	}

	var finalized *usecase.AlreadyFinalizedError
	if errors.As(err, &finalized) {
		appErr := pkg.NewDomainErrorSimple("ALREADY_FINALIZED", "Quotation already finalized", http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{
			"status":       string(finalized.Status),
			"order_number": finalized.OrderNumber,
		}))
		return
	}

	var illegal *usecase.IllegalTransitionError
	if errors.As(err, &illegal) {
		appErr := pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Illegal status transition", http.StatusConflict)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{
			"from": string(illegal.From),
			"to":   string(illegal.To),
		}))
		return
	}

	appErr := classify(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func classify(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Sales order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidReference),
		errors.Is(err, usecase.ErrInvalidAccountID),
		errors.Is(err, usecase.ErrInvalidLineItems),
		errors.Is(err, usecase.ErrUnknownCatalogItem),
		errors.Is(err, usecase.ErrInvalidTerms),
		errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrCommentRequired),
		errors.Is(err, usecase.ErrInvalidProofAmount),
		errors.Is(err, usecase.ErrInvalidAttachmentRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoAvailableItems):
		return pkg.NewDomainErrorSimple("NO_AVAILABLE_ITEMS", "No line items remain available", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCredentialRejected):
		return pkg.NewDomainErrorSimple("CREDENTIAL_REJECTED", "Password re-confirmation rejected", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrChallengeRejected):
		return pkg.NewDomainErrorSimple("CHALLENGE_REJECTED", "Human verification rejected", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Step-up session expired, restart the original action", http.StatusGone)
	case errors.Is(err, usecase.ErrNotSessionOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Session belongs to another actor", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotDocumentOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Document belongs to another account", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAmountExceedsBalance):
		return pkg.NewDomainErrorSimple("AMOUNT_EXCEEDS_BALANCE", "Claimed amount exceeds outstanding balance", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Concurrent update, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
