package routes

import (
	"log"
	"os"
	"strconv"

	_ "probridge/docs" // swag-generated documentation
	"probridge/internal/adapter/http/handlers"
	repository2 "probridge/internal/adapter/persistence/repository"
	"probridge/internal/config"
	"probridge/internal/infrastructure/database"
	"probridge/internal/infrastructure/notifications"
	"probridge/internal/infrastructure/payments"
	"probridge/internal/usecase"

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
	cfg := config.Load()
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	eventRepo := repository2.NewJobEventDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	payoutRepo := repository2.NewPayoutDynamoRepository(ddb)
	contractorRepo := repository2.NewContractorDynamoRepository(ddb)

	notifier := notifications.NewDynamoNotifier(ddb)

	// An unconfigured gateway still satisfies the interface: checkout then
	// fails with its not-configured error instead of a nil-interface panic.
	paymentGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), cfg.SandboxMode)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	}

	dispatcher := usecase.NewDispatcher()
	lifecycleUseCase := usecase.NewLifecycleUseCase(jobRepo, eventRepo, dispatcher)
	matchingUseCase := usecase.NewMatchingUseCase(jobRepo, eventRepo, contractorRepo, notifier, lifecycleUseCase, cfg)
	intakeUseCase := usecase.NewIntakeUseCase(jobRepo, eventRepo, quoteRepo, paymentRepo, matchingUseCase, lifecycleUseCase)
	quoteUseCase := usecase.NewQuoteUseCase(jobRepo, quoteRepo, eventRepo, lifecycleUseCase)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, jobRepo, eventRepo, paymentGateway, lifecycleUseCase, cfg)
	payoutUseCase := usecase.NewPayoutUseCase(payoutRepo, quoteRepo, contractorRepo, eventRepo, cfg)

	// Side effects (payout creation, notifications) hang off transitions, so
	// they fire no matter which command moved the job.
	usecase.RegisterSideEffects(dispatcher, payoutUseCase, notifier)

	jobHandler := handlers.NewJobHandler(intakeUseCase, lifecycleUseCase)
	matchingHandler := handlers.NewMatchingHandler(matchingUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, paymentUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	payoutHandler := handlers.NewPayoutHandler(payoutUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler, matchingHandler, quoteHandler, paymentHandler, payoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
