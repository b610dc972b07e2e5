package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "preventa/docs" // This will be auto-generated
	"preventa/internal/adapter/http/handlers"
	"preventa/internal/adapter/persistence/repository"
	"preventa/internal/config"
	"preventa/internal/infrastructure/backend"
	"preventa/internal/infrastructure/database"
	"preventa/internal/infrastructure/export"
	"preventa/internal/infrastructure/logger"
	"preventa/internal/infrastructure/notification"
	"preventa/internal/infrastructure/payments"
	"preventa/internal/usecase"
	"preventa/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), cfg); err != nil {
		logger.Log.WithError(err).Fatal("[startup] failed wiring the application")
	}

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		logger.Log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) error {
	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}

	policy, err := usecase.ParseIDPolicy(cfg.CatalogIDPolicy)
	if err != nil {
		return err
	}
	catalogUseCase := usecase.NewCatalogUseCase(storage, policy)
	if _, err := catalogUseCase.Reload(ctx); err != nil {
		// A corrupt snapshot is replaced by the next download.
		logger.Log.WithError(err).Warn("[startup] catalog reload failed")
	}

	draftEngine, err := usecase.NewDraftEngine(ctx, storage)
	if err != nil {
		logger.Log.WithError(err).Warn("[startup] starting with an empty draft")
	}

	queue := usecase.NewPendingOrderQueue(storage)

	var paymentGateway interfaces.IPaymentLinkGateway
	if cfg.MercadoPagoAccessToken != "" || cfg.PaymentGatewayMock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
		if err != nil {
			logger.Log.WithError(err).Warn("[startup] Mercado Pago gateway not configured")
		} else {
			paymentGateway = mpGateway
		}
	}

	orderUseCase := usecase.NewOrderFinalizer(draftEngine, catalogUseCase, queue, usecase.FinalizerConfig{
		Notifier:           notification.NewWhatsAppChannel(),
		Payments:           paymentGateway,
		Exporter:           export.NewXLSXExporter(),
		GeolocationTimeout: cfg.GeolocationTimeout,
		PhonePrefix:        cfg.PhoneCountryPrefix,
	})

	remote := backend.NewAppsScriptClient(cfg.BackendURL, cfg.BackendTimeout)
	syncUseCase := usecase.NewSyncCoordinator(remote, storage, catalogUseCase, queue, cfg.SyncOrderDelay)

	recommendationUseCase := usecase.NewRecommendationUseCase(catalogUseCase, draftEngine)
	goalsUseCase := usecase.NewGoalsUseCase(storage)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	draftHandler := handlers.NewDraftHandler(draftEngine, catalogUseCase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	syncHandler := handlers.NewSyncHandler(syncUseCase)
	goalsHandler := handlers.NewGoalsHandler(goalsUseCase)

	logger.Log.WithFields(logrus.Fields{
		"storage":     cfg.StorageDriver,
		"id_policy":   cfg.CatalogIDPolicy,
		"backend_set": cfg.BackendURL != "",
		"payments":    paymentGateway != nil,
	}).Info("[startup] application wired")

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler, recommendationHandler)
	addDraftRoutes(v1, draftHandler)
	addOrderRoutes(v1, orderHandler)
	addSyncRoutes(v1, syncHandler)
	addGoalsRoutes(v1, goalsHandler)
	return nil
}

// openStorage returns the key/value store selected by STORAGE_DRIVER.
func openStorage(ctx context.Context, cfg config.Config) (interfaces.IStorage, error) {
	switch cfg.StorageDriver {
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repository.NewDynamoStorage(ddb, cfg.StoreTable), nil
	case "mongodb":
		db, err := database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		return repository.NewMongoStorage(db, cfg.StoreCollection), nil
	default:
		return repository.NewMemoryStorage(), nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
