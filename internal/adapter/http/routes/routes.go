package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "tecnicontrol/docs"
	"tecnicontrol/internal/adapter/http/dto/request"
	"tecnicontrol/internal/adapter/http/handlers"
	"tecnicontrol/internal/adapter/http/middleware"
	"tecnicontrol/internal/adapter/persistence/docstore"
	"tecnicontrol/internal/adapter/persistence/repository"
	"tecnicontrol/internal/config"
	"tecnicontrol/internal/infrastructure/auth"
	"tecnicontrol/internal/infrastructure/database"
	"tecnicontrol/internal/infrastructure/logger"
	"tecnicontrol/internal/infrastructure/metrics"
	"tecnicontrol/internal/usecase"
	"tecnicontrol/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize document store", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, err := newRouter(cfg, zl, store, reg)
	if err != nil {
		zl.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		zl.Info("server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newStore builds the configured document store. With the dynamodb driver the
// tables are created first when DYNAMODB_CREATE_TABLES is set.
func newStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (interfaces.IDocumentStore, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		zl.Warn("using in-memory store, data is lost on restart")
		return docstore.NewMemoryStore(), nil
	}

	client, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, err
	}

	tables := tableNames(cfg.Tables)
	if cfg.Tables.Create {
		if err := database.EnsureTables(ctx, client, tables, repository.IndexedFields(), zl); err != nil {
			return nil, fmt.Errorf("ensure tables: %w", err)
		}
	}

	return docstore.NewDynamoDBStore(client, tables,
		docstore.WithMaxAttempts(cfg.Store.TransactionMaxAttempts),
		docstore.WithLogger(zl),
	), nil
}

func tableNames(t config.TableConfig) docstore.TableNames {
	return docstore.TableNames{
		repository.CollectionOrdenes:    t.Ordenes,
		repository.CollectionClientes:   t.Clientes,
		repository.CollectionNegocios:   t.Negocios,
		repository.CollectionContadores: t.Contadores,
	}
}

func newRouter(cfg *config.Config, zl *zap.Logger, store interfaces.IDocumentStore, reg *prometheus.Registry) (*gin.Engine, error) {
	router := gin.New()
	if err := setMiddlewares(router, zl); err != nil {
		return nil, err
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	getRoutes(router, cfg, zl, store, reg)
	return router, nil
}

func getRoutes(router *gin.Engine, cfg *config.Config, zl *zap.Logger, store interfaces.IDocumentStore, reg prometheus.Registerer) {
	orderMetrics := metrics.NewOrderMetrics(reg)

	orderRepo := repository.NewOrderRepository(store, orderMetrics, zl)
	clientRepo := repository.NewClientRepository(store, orderMetrics, zl)
	negocioRepo := repository.NewNegocioRepository(store, zl)
	contadorRepo := repository.NewContadorRepository(store, zl)
	sequenceRepo := repository.NewOrderSequenceRepository(store, repository.RetryPolicy{
		MaxRetries:      cfg.Sequence.MaxRetries,
		InitialInterval: cfg.Sequence.InitialInterval,
		MaxInterval:     cfg.Sequence.MaxInterval,
	}, orderMetrics, zl)
	idValidator := repository.NewOrderIDValidator(store)

	orderUseCase := usecase.NewOrderUseCase(orderRepo, clientRepo, sequenceRepo, idValidator, orderMetrics, zl)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	negocioUseCase := usecase.NewNegocioUseCase(negocioRepo)
	contadorUseCase := usecase.NewContadorUseCase(contadorRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	negocioHandler := handlers.NewNegocioHandler(negocioUseCase, contadorUseCase)

	identity := auth.NewJWTProvider(cfg.JWT.Secret, cfg.JWT.Issuer)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	private := v1.Group("", middleware.Auth(identity, zl))
	addOrderRoutes(private, orderHandler)
	addClientRoutes(private, clientHandler)
	addNegocioRoutes(private, negocioHandler)
}

func setMiddlewares(router *gin.Engine, zl *zap.Logger) error {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestLogger(zl))

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return request.RegisterValidations(v)
}
