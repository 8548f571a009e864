package routes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "laundry_dispatch/docs"
	"laundry_dispatch/internal/adapter/http/handlers"
	"laundry_dispatch/internal/adapter/persistence/repository"
	"laundry_dispatch/internal/infrastructure/catalog"
	"laundry_dispatch/internal/infrastructure/config"
	"laundry_dispatch/internal/infrastructure/database"
	"laundry_dispatch/internal/infrastructure/logging"
	"laundry_dispatch/internal/infrastructure/messaging"
	"laundry_dispatch/internal/infrastructure/payments"
	"laundry_dispatch/internal/usecase"
	"laundry_dispatch/internal/usecase/interfaces"
)

// Run will start the server
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	h, closeFn, err := buildHandlers(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("[api][routes] startup failed", zap.Error(err))
		return err
	}
	defer closeFn()

	router := NewRouter(h, logger)
	logger.Info("[api][routes] listening", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter mounts the middlewares, the swagger UI and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLaundryRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, func(), error) {
	plant, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return Handlers{}, nil, err
	}
	ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, nil, err
	}

	batchRepo := repository.NewBatchDynamoRepository(ddb, cfg.Tables.Batches)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices)
	paymentRepo := repository.NewInvoicePaymentDynamoRepository(ddb, cfg.Tables.Payments)
	workflowRepo := repository.NewWorkflowDynamoRepository(ddb, cfg.Tables.Workflows)

	var publisher interfaces.IEventPublisher = messaging.NewLogPublisher(logger)
	closeFn := func() {}
	if cfg.NATSURL != "" {
		nats, err := messaging.NewNATSPublisher(cfg.NATSURL, logger)
		if err != nil {
			return Handlers{}, nil, err
		}
		publisher = nats
		closeFn = func() { _ = nats.Close() }
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payment.AccessToken, logger)
	if err != nil {
		logger.Warn("[api][routes] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	planner := usecase.NewDayPlanner(plant,
		usecase.WithTolerance(cfg.TolerancePercent),
		usecase.WithDispatcherOptions(usecase.WithBatchIDs(func(prefix string, _ int) string {
			return prefix + "-" + uuid.NewString()
		})),
	)
	workflowUseCase := usecase.NewWorkflowUseCase(workflowRepo, publisher, logger)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, logger)
	batchUseCase := usecase.NewBatchUseCase(batchRepo, workflowUseCase, logger)
	dailyRunUseCase := usecase.NewDailyRunUseCase(planner, batchRepo, invoiceUseCase, workflowUseCase, publisher, logger)
	paymentUseCase := usecase.NewInvoicePaymentUseCase(paymentRepo, invoiceRepo, paymentGateway, usecase.PaymentSettings{
		Mock:            cfg.Payment.Mock,
		AccessToken:     cfg.Payment.AccessToken,
		TestPayerEmail:  cfg.Payment.TestPayerEmail,
		TestPayerUserID: cfg.Payment.TestPayerUserID,
	}, logger)

	logger.Info("[api][routes] plant loaded",
		zap.String("catalog", cfg.CatalogFile),
		zap.Int("machines", len(plant.Machines)),
		zap.Float64("tolerance_percent", planner.TolerancePercent()),
	)

	return Handlers{
		Dispatch: handlers.NewDispatchHandler(usecase.NewDispatchUseCase(planner, logger), logger),
		DayRun:   handlers.NewDayRunHandler(dailyRunUseCase, batchUseCase, logger),
		Batch:    handlers.NewBatchHandler(batchUseCase, logger),
		Workflow: handlers.NewWorkflowHandler(workflowUseCase, logger),
		Invoice:  handlers.NewInvoiceHandler(invoiceUseCase, logger),
		Payment:  handlers.NewInvoicePaymentHandler(paymentUseCase, cfg.Payment.Mock, logger),
	}, closeFn, nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
