package routes

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	_ "bengkel_service/docs" // swagger docs
	"bengkel_service/internal/adapter/http/handlers"
	"bengkel_service/internal/adapter/persistence/repository"
	"bengkel_service/internal/infrastructure/config"
	"bengkel_service/internal/infrastructure/database"
	"bengkel_service/internal/infrastructure/feed"
	"bengkel_service/internal/infrastructure/metrics"
	"bengkel_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	BasePath        = "/v1"
	shutdownTimeout = 10 * time.Second
)

// Dependencies are the wired use cases and ambient services the router serves.
type Dependencies struct {
	Jobs            usecase.IJobUseCase
	KPIs            usecase.IKPIUseCase
	Metrics         *metrics.Metrics
	Location        *time.Location
	Now             func() time.Time
	StreamHeartbeat time.Duration
	Logger          *slog.Logger
}

// Run will start the server and block until ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, cleanup, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
		// live KPI streams end with the process context
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter registers every route on a fresh engine.
func NewRouter(deps Dependencies) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	jobHandler := handlers.NewJobHandler(deps.Jobs, BasePath, logger)
	kpiHandler := handlers.NewKPIHandler(deps.KPIs, handlers.KPIHandlerConfig{
		Location:     deps.Location,
		Heartbeat:    deps.StreamHeartbeat,
		Now:          deps.Now,
		StreamOpened: deps.Metrics.StreamOpened,
		Logger:       logger,
	})

	v1 := router.Group(BasePath)
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler)
	addKPIRoutes(v1, kpiHandler)
	return router
}

func buildDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Dependencies, func(), error) {
	loc, err := cfg.Location()
	if err != nil {
		return Dependencies{}, nil, err
	}
	now := func() time.Time { return time.Now().In(loc) }

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Dependencies{}, nil, err
	}
	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		return Dependencies{}, nil, err
	}
	if rdb == nil {
		logger.Warn("REDIS_ADDR not set; live KPI stream will only send the initial snapshot")
	}
	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
	}

	ledgerFeed := feed.NewRedisLedgerFeed(rdb, logger)
	m := metrics.New(nil)

	jobRepo := repository.NewJobDynamoRepository(ddb, cfg.JobsTable, ledgerFeed, logger)
	txRepo := repository.NewCashierTransactionDynamoRepository(ddb, cfg.TransactionsTable)
	assetRepo := repository.NewAssetDynamoRepository(ddb, cfg.AssetsTable)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.SettingsTable, cfg.SettingsKey)

	opts := []usecase.JobUseCaseOption{
		usecase.WithMetrics(m),
		usecase.WithLogger(logger),
		usecase.WithClock(now),
	}
	if cfg.NumberClaimEnabled {
		claimer := repository.NewDocumentNumberDynamoClaimer(ddb, cfg.DocumentNumbersTable)
		opts = append(opts, usecase.WithNumberClaimer(claimer, cfg.NumberClaimMaxAttempts))
	}

	return Dependencies{
		Jobs:            usecase.NewJobUseCase(jobRepo, opts...),
		KPIs:            usecase.NewKPIUseCase(jobRepo, txRepo, assetRepo, settingsRepo, ledgerFeed, logger, now),
		Metrics:         m,
		Location:        loc,
		Now:             now,
		StreamHeartbeat: cfg.StreamHeartbeat,
		Logger:          logger,
	}, cleanup, nil
}

func setMiddlewares(router *gin.Engine, logger *slog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
