package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/tradespark/tradespark-api/config"
	"github.com/tradespark/tradespark-api/internal/catalog"
	"github.com/tradespark/tradespark-api/internal/handlers"
	"github.com/tradespark/tradespark-api/internal/leadform"
	"github.com/tradespark/tradespark-api/internal/middleware"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/internal/promo"
	"github.com/tradespark/tradespark-api/internal/services"
	"github.com/tradespark/tradespark-api/pkg/httpclient"
	"github.com/tradespark/tradespark-api/pkg/logger"
	"github.com/tradespark/tradespark-api/pkg/metrics"
	"github.com/tradespark/tradespark-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerAPIRoutes registers the public API routes
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, formRateLimiter *middleware.RateLimiter,
	courseHandler *handlers.CourseHandler,
	leadHandler *handlers.LeadHandler,
	contactHandler *handlers.ContactHandler,
	promoHandler *handlers.PromoHandler,
) {
	group.GET("/courses", generalRateLimiter.Middleware(), courseHandler.ListCourses)
	group.GET("/courses/:slug", generalRateLimiter.Middleware(), courseHandler.GetCourseBySlug)

	// Form endpoints get the tight limiter and a small body cap to stop spam
	group.POST("/leads", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), leadHandler.SubmitLead)
	group.POST("/contacts", formRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(100*1024), contactHandler.SubmitContact)

	group.GET("/promo/popup", generalRateLimiter.Middleware(), promoHandler.GetPopup)
	group.POST("/promo/popup/open", generalRateLimiter.Middleware(), promoHandler.OpenPopup)
	group.POST("/promo/popup/close", generalRateLimiter.Middleware(), promoHandler.ClosePopup)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting TradeSpark API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.OTLPEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Initialize metrics
	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics()

	// Load the course catalog synchronously before accepting requests so the
	// container is only marked healthy with a populated catalog
	courseCache := catalog.NewCourseCache(catalog.NewStaticSource())
	if err := courseCache.Initialize(context.Background()); err != nil {
		logger.Fatal("Failed to initialize course catalog", zap.Error(err))
	}

	// Promo gate storage: redis when configured, in-memory otherwise
	var gateStorage promo.Storage
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		gateStorage = promo.NewRedisStorage(redisClient)
		logger.Info("Promo gate using redis storage", zap.String("addr", cfg.Redis.Addr))
	} else {
		gateStorage = promo.NewMemoryStorage()
		logger.Warn("REDIS_ADDR not set, promo gate state will not survive restarts")
	}

	// Arm the popup gate for this process lifetime
	gate := promo.NewGate(gateStorage, time.Now)
	gate.Arm(context.Background(), time.Duration(cfg.Promo.DelayMs)*time.Millisecond)
	defer gate.Disarm()

	// HTTP client for the CRM, captcha, and trigger calls
	httpClient := httpclient.NewStandardClientWithTimeout(time.Duration(cfg.CRM.TimeoutSeconds) * time.Second)

	// CRM forwarders are optional: without endpoints, submissions are
	// accepted locally and only logged
	var leadForwarder, contactForwarder leadform.Forwarder
	if cfg.CRM.LeadEndpoint != "" {
		leadForwarder = leadform.NewSubmitter(cfg.CRM.LeadEndpoint, services.LeadFallbackMessage, "submit_lead", httpClient)
	} else {
		logger.Warn("CRM_LEAD_ENDPOINT not set, leads will be accepted locally")
	}
	if cfg.CRM.ContactEndpoint != "" {
		contactForwarder = leadform.NewSubmitter(cfg.CRM.ContactEndpoint, services.ContactFallbackMessage, "submit_contact", httpClient)
	} else {
		logger.Warn("CRM_CONTACT_ENDPOINT not set, contacts will be accepted locally")
	}

	// Initialize services
	courseService := services.NewCourseService(courseCache)
	leadService := services.NewLeadService(cfg, leadForwarder, httpClient)
	contactService := services.NewContactService(cfg, contactForwarder, httpClient)

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService)
	leadHandler := handlers.NewLeadHandler(leadService)
	contactHandler := handlers.NewContactHandler(contactService)
	promoHandler := handlers.NewPromoHandler(gate, models.PromoOffer{
		Title:       cfg.Promo.OfferTitle,
		Description: cfg.Promo.OfferDescription,
		CTALabel:    cfg.Promo.OfferCTALabel,
		CTAURL:      cfg.Promo.OfferCTAURL,
	})
	healthHandler := handlers.NewHealthHandler(courseCache.IsReady)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only the marketing site origins
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Rate limiters: tight limits on the form endpoints to stop spam
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	formRateLimiter := middleware.NewRateLimiter(5, 10)       // 5 req/sec, burst of 10

	// Operational endpoints (not versioned)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, formRateLimiter, courseHandler, leadHandler, contactHandler, promoHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Cancel any pending popup timer before tearing down
	gate.Disarm()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
