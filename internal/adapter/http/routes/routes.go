package routes

import (
	"log"
	"os"
	"strconv"

	_ "glassfleet/docs" // swag-generated
	"glassfleet/internal/adapter/http/handlers"
	repository "glassfleet/internal/adapter/persistence/repository"
	"glassfleet/internal/infrastructure/database"
	"glassfleet/internal/infrastructure/notify"
	"glassfleet/internal/infrastructure/payments"
	"glassfleet/internal/usecase"
	"glassfleet/internal/usecase/interfaces"

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

	repairRepo := repository.NewRepairDynamoRepository(ddb)
	counterRepo := repository.NewCounterDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	technicianRepo := repository.NewTechnicianDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)

	notifier := notify.NewLogNotifier()

	batchUseCase := usecase.NewRepairBatchUseCase(repairRepo, counterRepo, customerRepo, technicianRepo)
	lifecycleUseCase := usecase.NewRepairLifecycleUseCase(repairRepo, technicianRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, repairRepo, paymentGateway)

	repairHandler := handlers.NewRepairHandler(batchUseCase, notifier)
	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleUseCase, notifier)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRepairRoutes(v1, repairHandler, lifecycleHandler)
	addInvoiceRoutes(v1, invoiceHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
