package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/stockledger/backend/internal/application/identity"
	"github.com/stockledger/backend/internal/application/ledger"
	reportapp "github.com/stockledger/backend/internal/application/report"
	requestapp "github.com/stockledger/backend/internal/application/request"
	stockapp "github.com/stockledger/backend/internal/application/stock"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stockledger/backend/internal/infrastructure/auth"
	"github.com/stockledger/backend/internal/infrastructure/cache"
	"github.com/stockledger/backend/internal/infrastructure/config"
	"github.com/stockledger/backend/internal/infrastructure/logger"
	"github.com/stockledger/backend/internal/infrastructure/persistence"
	"github.com/stockledger/backend/internal/infrastructure/storage"
	"github.com/stockledger/backend/internal/infrastructure/telemetry"
	"github.com/stockledger/backend/internal/interfaces/http/handler"
	"github.com/stockledger/backend/internal/interfaces/http/middleware"
	"github.com/stockledger/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/stockledger/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Stock Ledger API
//	@version		1.0
//	@description	Inventory and sales ledger for a small retail shop: products, purchases, shop batches, sales and product requests.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}". The jwt session cookie is accepted as well.

// loginAttemptsPerMinute bounds register and login calls per client IP
const loginAttemptsPerMinute = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()

	// Telemetry providers install themselves globally; disabled ones are no-ops
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	if loggerProvider.IsEnabled() {
		log = loggerProvider.Bridge(log, cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level))
	}
	profiler, err := telemetry.NewProfiler(cfg.Profiling, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && cfg.Profiling.SpanProfiles {
		tracerProvider.EnableSpanProfiles()
	}

	log.Info("Starting stock ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("stock_source", cfg.Ledger.StockSource),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.NewDBTracing(cfg.Telemetry, cfg.Database.Driver, log).Register(db.DB); err != nil {
			log.Fatal("Failed to register database tracing", zap.Error(err))
		}
	}
	meter := meterProvider.Meter("stock-ledger")
	if meterProvider.IsEnabled() {
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatal("Failed to access connection pool", zap.Error(err))
		}
		if _, err := telemetry.RegisterDBMetrics(db.DB, sqlDB, meter, cfg.Telemetry.DBSlowQueryThresh, log); err != nil {
			log.Fatal("Failed to register database metrics", zap.Error(err))
		}
	}
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	requestRepo := persistence.NewGormRequestedProductRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Sessions
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist, err := auth.NewTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize token blacklist", zap.Error(err))
	}

	// Application services
	source, err := stock.ParseSource(cfg.Ledger.StockSource)
	if err != nil {
		log.Fatal("Invalid stock source", zap.Error(err))
	}
	catalogService := stockapp.NewCatalogService(productRepo, shopRepo, log)
	ledgerService := ledger.NewLedgerService(persistence.NewGormTransactionScope(db.DB), purchaseRepo, saleRepo, source)
	ledgerService.SetLogger(log)
	if meterProvider.IsEnabled() {
		ledgerMetrics, err := telemetry.NewLedgerMetrics(telemetry.LedgerMetricsConfig{
			Meter:             meter,
			Logger:            log,
			Levels:            telemetry.NewGormStockLevelProvider(db.DB),
			LowStockThreshold: cfg.Ledger.LowStockThreshold,
		})
		if err != nil {
			log.Fatal("Failed to register ledger metrics", zap.Error(err))
		}
		ledgerService.SetRecorder(ledgerMetrics)
	}
	requestService := requestapp.NewService(requestRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, blacklist, log)
	if err := userService.EnsurePrimaryAdmin(ctx, cfg.App.PrimaryAdmin); err != nil {
		log.Fatal("Failed to seed primary admin", zap.Error(err))
	}

	var reportOpts []reportapp.Option
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage,
			storage.WithLogger(log),
			storage.WithPresignExpiration(cfg.Storage.PresignExpiration))
		if err != nil {
			log.Fatal("Failed to initialize report storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to prepare report bucket", zap.Error(err))
		}
		reportOpts = append(reportOpts, reportapp.WithArchive(s3Storage, cfg.Storage.KeyPrefix))
	}
	reportService := reportapp.NewService(saleRepo, purchaseRepo, log, reportOpts...)

	// HTTP
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}
	httpMetrics, err := middleware.HTTPMetrics(meter)
	if err != nil {
		log.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}
	engine.Use(
		logger.Recovery(log),
		middleware.RequestID(),
		middleware.Tracing(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     tracerProvider.IsEnabled(),
		}),
		logger.GinMiddleware(log),
		middleware.SpanEnricher(),
		httpMetrics,
		middleware.Profiling(middleware.ProfilingConfig{
			Enabled:          profiler.IsEnabled(),
			SkipPathPrefixes: []string{"/api/v1/health", "/swagger"},
		}),
		middleware.Secure(cfg.IsProduction()),
		middleware.CORS(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	authMiddleware := middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		CookieName:     cfg.Cookie.Name,
		Logger:         log,
	})

	guards := router.Guards{
		Auth:         authMiddleware,
		OptionalAuth: middleware.OptionalJWTAuth(jwtService, cfg.Cookie.Name),
		Logger:       log,
	}
	loginLimiter := middleware.NewRateLimiter(loginAttemptsPerMinute, time.Minute)
	defer loginLimiter.Stop()
	guards.Credentials = middleware.RateLimitByKey(loginLimiter, func(c *gin.Context) string {
		return "ip:" + c.ClientIP()
	})
	if cfg.HTTP.RateLimitEnabled {
		apiLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer apiLimiter.Stop()
		guards.Authenticated = append(guards.Authenticated, middleware.RateLimit(apiLimiter))
	}
	idempotencyStore := cache.NewIdempotencyStore(cfg.Redis, log)
	defer idempotencyStore.Close()
	guards.Idempotency = middleware.Idempotency(middleware.IdempotencyConfig{
		Store:  idempotencyStore,
		TTL:    cfg.HTTP.IdempotencyTTL,
		Logger: log,
	})

	handlers := router.Handlers{
		Health:           handler.NewHealthHandler(db),
		Product:          handler.NewProductHandler(catalogService),
		Shop:             handler.NewShopHandler(catalogService, ledgerService),
		Purchase:         handler.NewPurchaseHandler(ledgerService),
		Sale:             handler.NewSaleHandler(ledgerService),
		RequestedProduct: handler.NewRequestedProductHandler(requestService),
		User:             handler.NewUserHandler(authService, userService, cfg.Cookie),
		Report:           handler.NewReportHandler(reportService),
	}
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(router.StockLedgerRoutes(handlers, guards)...).
		Setup()

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, authMiddleware),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Warn("Failed to stop profiler", zap.Error(err))
	}
	for name, shutdown := range map[string]func(context.Context) error{
		"tracer": tracerProvider.Shutdown,
		"meter":  meterProvider.Shutdown,
		"logger": loggerProvider.Shutdown,
	} {
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn("Failed to flush telemetry", zap.String("provider", name), zap.Error(err))
		}
	}

	log.Info("Server exited gracefully")
}
