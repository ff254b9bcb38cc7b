package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "comercio_b2b/docs" // This will be auto-generated
	"comercio_b2b/internal/adapter/http/handlers"
	"comercio_b2b/internal/adapter/persistence/repository"
	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/infrastructure/database"
	"comercio_b2b/internal/infrastructure/verify"
	"comercio_b2b/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository.NewQuotationDynamoRepository(ddb)
	orderRepo := repository.NewSalesOrderDynamoRepository(ddb)
	sessionRepo := repository.NewStepUpSessionDynamoRepository(ddb)
	stockRepo := repository.NewStockDynamoRepository(ddb)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb)
	auditRepo := repository.NewAuditDynamoRepository(ddb)

	credentialVerifier := verify.NewAccountCredentialVerifier(ddb)
	humanVerifier, err := verify.NewHumanVerifier(os.Getenv("HUMAN_VERIFIER_SECRET"))
	if err != nil {
		log.Fatalf("human verifier not configured: %v", err)
	}

	reconciler := usecase.NewAvailabilityReconciler(stockRepo)
	gate := usecase.NewRiskGateUseCase(sessionRepo, credentialVerifier, humanVerifier, auditRepo, riskPolicyFromEnv())
	conversion := usecase.NewOrderConversionUseCase(quotationRepo, orderRepo, reconciler, auditRepo)
	quotationUseCase := usecase.NewQuotationUseCase(
		quotationRepo, catalogRepo, stockRepo, reconciler, gate, conversion, auditRepo, quotationValidityFromEnv(),
	)
	proofUseCase := usecase.NewPaymentProofUseCase(orderRepo, gate, auditRepo)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	decisionHandler := handlers.NewDecisionHandler(quotationUseCase, proofUseCase, gate)
	proofHandler := handlers.NewPaymentProofHandler(proofUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, decisionHandler, proofHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// riskPolicyFromEnv builds the step-up policy. Defaults classify quotation
// approval and payment-proof submission as binding.
func riskPolicyFromEnv() usecase.RiskPolicy {
	policy := usecase.DefaultRiskPolicy()
	if v := os.Getenv("RISK_FORCE_HUMAN_VERIFICATION"); v == "true" {
		policy.ForceHumanVerification = true
	}
	if v, err := strconv.Atoi(os.Getenv("RISK_MAX_PASSWORD_ATTEMPTS")); err == nil && v > 0 {
		policy.MaxPasswordAttempts = v
	}
	if v, err := strconv.Atoi(os.Getenv("RISK_ESCALATION_FAILURES")); err == nil && v > 0 {
		policy.EscalationFailureThreshold = v
	}
	if v, err := strconv.Atoi(os.Getenv("STEPUP_SESSION_TTL_SECONDS")); err == nil && v > 0 {
		policy.SessionTTL = time.Duration(v) * time.Second
	}
	if os.Getenv("RISK_EXEMPT_PAYMENT_PROOF") == "true" {
		policy.BindingActions[entities.ActionPaymentProof] = false
	}
	return policy
}

func quotationValidityFromEnv() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("QUOTATION_VALIDITY_DAYS")); err == nil && v > 0 {
		return time.Duration(v) * 24 * time.Hour
	}
	return 14 * 24 * time.Hour
}
