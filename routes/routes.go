package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zyph-contact-api/config"
	"zyph-contact-api/controllers"
	"zyph-contact-api/metrics"
	"zyph-contact-api/middleware"
)

// SetupRoutes wires the route table. Every dependency is passed in; no
// package-level state.
func SetupRoutes(
	router *gin.Engine,
	cfg config.Config,
	contactController *controllers.ContactController,
	adminController *controllers.AdminController,
	rateLimiter gin.HandlerFunc,
) {
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", metrics.Middleware("health"), func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"service":   "Zyph Technologies API",
			})
		})

		// Contact form intake, rate limited per client address
		api.POST("/contact", metrics.Middleware("contact"), rateLimiter, contactController.SubmitContact)

		// Admin reads (bearer token, no rate limit)
		admin := api.Group("/admin")
		admin.Use(metrics.Middleware("admin"), middleware.AdminAuth(cfg.AdminToken))
		{
			admin.GET("/stats", adminController.GetStats)
			admin.GET("/contacts", adminController.GetContacts)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "error": "Ruta no encontrada"})
	})
}
