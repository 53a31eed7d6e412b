package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "sgf_demandas/docs" // swag-generated documentation
	"sgf_demandas/internal/adapter/http/handlers"
	"sgf_demandas/internal/adapter/http/middleware"
	"sgf_demandas/internal/adapter/persistence/repository"
	"sgf_demandas/internal/adapter/persistence/repository/blobrepo"
	"sgf_demandas/internal/adapter/persistence/repository/memory"
	"sgf_demandas/internal/infrastructure/database"
	"sgf_demandas/internal/infrastructure/payments"
	"sgf_demandas/internal/infrastructure/token"
	"sgf_demandas/internal/seed"
	"sgf_demandas/internal/usecase"
	"sgf_demandas/internal/usecase/interfaces"

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
	ctx := context.Background()

	var store interfaces.IBlobStore
	if os.Getenv("BLOB_STORE") == "memory" {
		log.Printf("[routes] using in-memory blob store, state will not survive a restart")
		store = memory.NewBlobStore()
	} else {
		store = repository.NewBlobDynamoStore(database.ConnectDynamoDB())
	}

	demandRepo := blobrepo.NewDemandRepository(store)
	catalogRepo := blobrepo.NewCatalogRepository(store)
	companyRepo := blobrepo.NewCompanyRepository(store)
	userRepo := blobrepo.NewUserRepository(store)

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin"
	}
	if err := seed.Run(ctx, catalogRepo, companyRepo, userRepo, adminPassword); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("[routes] JWT_SECRET not set, using an insecure development secret")
		secret = "sgf-dev-secret"
	}
	tokens := token.NewService(secret, 12*time.Hour)

	var demandUseCase usecase.IDemandUseCase
	if os.Getenv("STRICT_WORKFLOW") == "true" {
		demandUseCase = usecase.NewStrictDemandUseCase(demandRepo)
	} else {
		demandUseCase = usecase.NewDemandUseCase(demandRepo)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	financialUseCase := usecase.NewFinancialUseCase(demandRepo, catalogRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	companyUseCase := usecase.NewCompanyUseCase(companyRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo)
	reportUseCase := usecase.NewReportUseCase(demandRepo)
	backupUseCase := usecase.NewBackupUseCase(demandRepo, companyRepo, catalogRepo, userRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(demandRepo, paymentGateway)

	demandHandler := handlers.NewDemandHandler(demandUseCase)
	financialHandler := handlers.NewFinancialHandler(financialUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	companyHandler := handlers.NewCompanyHandler(companyUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase, tokens)
	reportHandler := handlers.NewReportHandler(reportUseCase, demandUseCase)
	backupHandler := handlers.NewBackupHandler(backupUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/auth/login", authHandler.Login)

	// Everything else requires a valid token.
	authed := v1.Group("", middleware.RequireAuth(tokens))
	addDemandRoutes(authed, demandHandler, financialHandler, invoiceHandler)
	addReportRoutes(authed, reportHandler)
	addSettingsRoutes(authed, catalogHandler, companyHandler, authHandler, backupHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
