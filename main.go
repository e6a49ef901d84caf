package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"umrah-gateway/internal/catalog"
	"umrah-gateway/internal/config"
	"umrah-gateway/internal/gateway"
	"umrah-gateway/internal/handlers"
	"umrah-gateway/internal/kafka"
	"umrah-gateway/internal/logger"
	"umrah-gateway/internal/middleware"
	"umrah-gateway/internal/services"
	"umrah-gateway/internal/storage"
)

// Global logger instance
var log *logger.Logger

func main() {
	log = logger.NewLogger()
	defer log.Close()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn("ENV", "Error loading .env file, using environment variables")
	}

	log.LogProcess("STARTUP", "Umrah payment gateway starting up...")

	cfg := config.Load()
	log.Info("CONFIG", "Configuration loaded successfully")

	// Catalog is immutable and populated once; no store backs it.
	catalogStore := catalog.NewStore(catalog.Default())
	log.LogProcess("CATALOG", "Package catalog initialized")

	razorpayClient, err := gateway.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, log)
	if err != nil {
		log.Fatal("RAZORPAY", "Failed to initialize Razorpay client: "+err.Error())
	}
	log.LogProcess("RAZORPAY", "Razorpay order client initialized")

	// Without brokers the producer runs in mock mode and events only hit the log.
	mockKafka := len(cfg.Kafka.Brokers) == 0
	producer, err := kafka.NewProducer(cfg.Kafka.Brokers, mockKafka, log)
	if err != nil {
		log.Fatal("KAFKA", "Failed to create Kafka producer: "+err.Error())
	}
	defer producer.Close()
	log.LogKafka("INIT", "producer", "Payment event producer initialized")

	// Bookings go to Redis when configured, otherwise to process memory.
	var sink storage.BookingSink
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		sink = storage.NewRedisSink(redisClient, log)
		log.LogDatabase("INIT", "redis", "Redis booking sink initialized")
	} else {
		sink = storage.NewInMemorySink()
		log.LogDatabase("INIT", "memory", "In-memory booking sink initialized")
	}

	intentService := services.NewIntentService(catalogStore, razorpayClient, log)
	verificationService := services.NewVerificationService(cfg.Razorpay.KeySecret, sink, producer, log)
	failureRecorder := services.NewFailureRecorder(producer, log)
	log.LogProcess("SERVICE", "Payment services initialized")

	paymentHandler := handlers.NewPaymentHandler(intentService, verificationService, failureRecorder)
	catalogHandler := handlers.NewCatalogHandler(catalogStore)
	log.LogProcess("HANDLER", "All handlers initialized")

	router := setupRouter(cfg, paymentHandler, catalogHandler)
	log.LogProcess("ROUTER", "HTTP router configured")

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.LogProcess("SERVER", "Starting HTTP server on port "+cfg.Server.Port)
		log.Info("STARTUP", "Health check available at: http://localhost:"+cfg.Server.Port+"/api/health")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", "Server failed to start: "+err.Error())
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn("SHUTDOWN", "Received shutdown signal, initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("SHUTDOWN", "Server forced to shutdown: "+err.Error())
	}

	log.Info("SHUTDOWN", "Umrah payment gateway shutdown completed")
}

func setupRouter(cfg *config.Config, paymentHandler *handlers.PaymentHandler, catalogHandler *handlers.CatalogHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.EnhancedLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.FrontendURL, log))
	router.Use(middleware.RateLimit(log))

	api := router.Group("/api")
	{
		api.POST("/create-order", paymentHandler.CreateOrder)
		api.POST("/verify-payment", paymentHandler.VerifyPayment)
		api.POST("/create-upi-intent", paymentHandler.CreateUPIIntent)
		api.POST("/payment-failed", paymentHandler.PaymentFailed)

		api.GET("/packages", catalogHandler.ListPackages)
		api.GET("/packages/:id", catalogHandler.GetPackage)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "Server is running",
				"timestamp": time.Now().UTC(),
			})
		})
	}

	log.LogProcess("ROUTER", "All routes registered successfully")
	return router
}
