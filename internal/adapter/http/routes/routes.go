package routes

import (
	"log"
	"net/http"
	"strconv"

	_ "payment-gateway/docs" // swag-generated documentation
	"payment-gateway/internal/adapter/http/handlers"
	"payment-gateway/internal/adapter/persistence/repository"
	"payment-gateway/internal/infrastructure/bank"
	"payment-gateway/internal/usecase"
	"payment-gateway/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run wires the application and starts the server.
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
	// The payment repository lives for the process lifetime and is shared by
	// every in-flight request; created once here, injected below.
	paymentRepo := repository.NewPaymentMemoryRepository()
	bankClient := bank.NewClient()

	paymentUseCase := usecase.NewPaymentGatewayUseCase(paymentRepo, bankClient)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	api := router.Group("/")
	addPingRoutes(api)
	addPaymentRoutes(api, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[payment][router] recovered from panic: %v", recovered)
		appErr := pkg.NewDomainErrorSimple("Internal Server Error", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}))
}
