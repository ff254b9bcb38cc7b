package routes

import (
	"net/http"

	"comercio_b2b/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathChallenges = "/challenges"
	PathOrders     = "/orders"
)

func addQuotationRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, decisionHandler *handlers.DecisionHandler, proofHandler *handlers.PaymentProofHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("/:reference", quotationHandler.GetQuotation)
		quotations.POST("/:reference/submit", quotationHandler.SubmitQuotation)
		quotations.PATCH("/:reference/issue", quotationHandler.IssueQuotation)
		quotations.PATCH("/:reference/flag-adjustment", quotationHandler.FlagAdjustment)
		quotations.PATCH("/:reference/reissue", quotationHandler.ReissueQuotation)
		quotations.POST("/:reference/decision", decisionHandler.Decide)
	}

	challenges := rg.Group(PathChallenges)
	{
		challenges.POST("/:session_id/satisfy", decisionHandler.SatisfyChallenge)
		challenges.DELETE("/:session_id", decisionHandler.CancelChallenge)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_number", proofHandler.GetOrder)
		orders.POST("/:order_number/payment-proofs", proofHandler.SubmitPaymentProof)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
