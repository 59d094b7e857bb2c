package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/heartman0001/ForeCase/internal/config"
	"github.com/heartman0001/ForeCase/internal/handlers"
	"github.com/heartman0001/ForeCase/internal/middleware"
	"github.com/heartman0001/ForeCase/internal/repository"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "forecase-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	customerRepo := repository.NewCustomerRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	installmentRepo := repository.NewInstallmentRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	reportRepo := repository.NewReportRepo(db)
	userRepo := repository.NewUserRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	customerHandler := handlers.NewCustomerHandler(customerRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceRepo)
	installmentHandler := handlers.NewInstallmentHandler(installmentRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	dashboardHandler := handlers.NewDashboardHandler(installmentRepo, projectRepo, settingRepo, cfg.DashboardTopN)
	reportHandler := handlers.NewReportHandler(reportRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	settingsHandler := handlers.NewSettingsHandler(settingRepo)

	protected := router.Group("/api")
	protected.Use(middleware.AuthRequired(cfg.JwtSecret))
	{
		protected.GET("/me", userHandler.Me)
		protected.GET("/dashboard", dashboardHandler.Get)
		protected.GET("/reports/monthly", reportHandler.Monthly)

		protected.GET("/customers", customerHandler.List)
		protected.POST("/customers", customerHandler.Create)
		protected.GET("/customers/:id", customerHandler.Get)
		protected.PUT("/customers/:id", customerHandler.Update)
		protected.DELETE("/customers/:id", customerHandler.Delete)

		protected.GET("/projects", projectHandler.List)
		protected.POST("/projects", projectHandler.Create)
		protected.GET("/projects/:id", projectHandler.Get)
		protected.PUT("/projects/:id", projectHandler.Update)
		protected.DELETE("/projects/:id", projectHandler.Delete)

		protected.GET("/invoices", invoiceHandler.List)
		protected.POST("/invoices", invoiceHandler.Create)
		protected.GET("/invoices/:id", invoiceHandler.Get)
		protected.PUT("/invoices/:id", invoiceHandler.Update)
		protected.DELETE("/invoices/:id", invoiceHandler.Delete)

		protected.GET("/installments", installmentHandler.List)
		protected.POST("/installments", installmentHandler.Create)
		protected.PUT("/installments/:id", installmentHandler.Update)
		protected.DELETE("/installments/:id", installmentHandler.Delete)

		protected.GET("/notifications", notificationHandler.List)
		protected.POST("/notifications", notificationHandler.Create)
		protected.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
		protected.DELETE("/notifications/:id", notificationHandler.Delete)

		protected.GET("/users", middleware.RequireAnyRole("admin", "manager"), userHandler.List)
		protected.PUT("/users/:id", middleware.RequireAnyRole("admin"), userHandler.Update)
		protected.DELETE("/users/:id", middleware.RequireAnyRole("admin"), userHandler.Delete)

		protected.GET("/settings", settingsHandler.Get)
		protected.PUT("/settings", middleware.RequireAnyRole("admin", "manager"), settingsHandler.Update)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
