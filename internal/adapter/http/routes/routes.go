package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "edu_boletos/docs" // This will be auto-generated
	"edu_boletos/internal/adapter/http/handlers"
	"edu_boletos/internal/adapter/persistence/memory"
	repository2 "edu_boletos/internal/adapter/persistence/repository"
	"edu_boletos/internal/infrastructure/database"
	"edu_boletos/internal/infrastructure/enrollment"
	"edu_boletos/internal/infrastructure/payments"
	"edu_boletos/internal/usecase"
	"edu_boletos/internal/usecase/interfaces"

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
	boletoRepo := newBoletoRepository()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var enrollmentService interfaces.IEnrollmentService
	enrollmentClient, err := enrollment.NewHTTPEnrollmentService(os.Getenv("ENROLLMENT_SERVICE_URL"))
	if err != nil {
		log.Printf("Enrollment service not configured, issuance will be rejected: %v", err)
	} else {
		enrollmentService = enrollmentClient
	}

	issuerID := getenvDefault("BOLETO_ISSUER_ID", "001")
	boletoUseCase := usecase.NewBoletoUseCase(boletoRepo, enrollmentService, paymentGateway, issuerID)

	startOverdueSweeper(boletoUseCase)

	boletoHandler := handlers.NewBoletoHandler(boletoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBoletoRoutes(v1, boletoHandler)
}

func newBoletoRepository() interfaces.IBoletoRepository {
	if getenvDefault("BOLETO_REPOSITORY", "dynamodb") == "memory" {
		log.Printf("[boleto][routes] using in-memory repository")
		return memory.NewBoletoRepository()
	}
	ddb := database.ConnectDynamoDB()
	return repository2.NewBoletoDynamoRepository(ddb)
}

// startOverdueSweeper promotes overdue boletos in the background. The
// sweep also runs via POST /v1/boletos/sweep-overdue for on-demand use.
// Set OVERDUE_SWEEP_INTERVAL=0 to disable.
func startOverdueSweeper(uc usecase.IBoletoUseCase) {
	raw := getenvDefault("OVERDUE_SWEEP_INTERVAL", "1h")
	if raw == "0" || raw == "off" {
		log.Printf("[boleto][sweeper] disabled")
		return
	}
	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		log.Printf("[boleto][sweeper] invalid OVERDUE_SWEEP_INTERVAL=%q, using 1h", raw)
		interval = time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			promoted, err := uc.SweepOverdue(context.Background())
			if err != nil {
				log.Printf("[boleto][sweeper] sweep failed err=%v", err)
				continue
			}
			if promoted > 0 {
				log.Printf("[boleto][sweeper] promoted=%d", promoted)
			}
		}
	}()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
