package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"zyph-contact-api/config"
	"zyph-contact-api/controllers"
	"zyph-contact-api/metrics"
	"zyph-contact-api/middleware"
	"zyph-contact-api/routes"
	"zyph-contact-api/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := config.Load()

	// Required settings must fail loudly at startup, not at first request.
	if cfg.DatabaseDSN == "" {
		log.Fatal("❌ DATABASE_DSN is not set")
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	mailer := config.NewMailer(cfg)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Register()

	// Wire components explicitly; nothing reads the environment past here.
	store := services.NewContactStore(db)
	notifier := services.NewNotificationService(mailer, cfg)
	contactService := services.NewContactService(store, notifier)

	contactController := controllers.NewContactController(contactService)
	adminController := controllers.NewAdminController(store)

	var counterStore middleware.CounterStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Fatalf("❌ Redis connection failed: %v", err)
		}
		counterStore = middleware.NewRedisCounterStore(rdb)
		defer rdb.Close()
	} else {
		counterStore = middleware.NewMemoryCounterStore()
	}
	rateLimiter := middleware.RateLimit(counterStore, cfg.RateLimitMax, cfg.RateLimitWindow)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Error interno del servidor. Intenta nuevamente más tarde.",
		})
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	routes.SetupRoutes(router, cfg, contactController, adminController, rateLimiter)

	log.Printf("🚀 Server starting on port %s", cfg.Port)
	if cfg.EmailConfigured() {
		log.Printf("📧 Email configurado: ✓ (%s)", cfg.SMTPHost)
	} else {
		log.Printf("📧 Email configurado: ✗ (SMTP_HOST/SMTP_FROM missing, notifications will fail)")
	}
	if cfg.AdminToken == "" {
		log.Printf("🔑 Admin token: ✗ (admin endpoints disabled)")
	}
	log.Printf("🌐 CORS configured for %s", cfg.FrontendURL)
	log.Printf("⏱  Rate limit: %d requests / %s per IP", cfg.RateLimitMax, cfg.RateLimitWindow)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
