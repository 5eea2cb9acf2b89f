// internal/app/router.go
package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentsmart-service/internal/domain/auth"
	authHandler "rentsmart-service/internal/handlers/auth"
	dataHandler "rentsmart-service/internal/handlers/data"
	reportHandler "rentsmart-service/internal/handlers/report"
	"rentsmart-service/internal/middleware"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	DataHandler    *dataHandler.DataHandler
	ReportHandler  *reportHandler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/login", h.AuthHandler.Login)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.Auth())
	{
		authProtected.POST("/logout", h.AuthHandler.Logout)
		authProtected.GET("/me", h.AuthHandler.Me)
	}

	// ==================== Collections ====================
	// Day-to-day fleet data. Agents and managers both work these screens.
	collections := api.Group("/data")
	collections.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireRole(auth.RoleManager, auth.RoleAgent))
	{
		collections.GET("/:collection", h.DataHandler.GetCollection)
		collections.PUT("/:collection", h.DataHandler.SaveCollection)
	}

	// ==================== Data Import / Export ====================
	transfer := api.Group("/data")
	transfer.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireRole(auth.RoleManager))
	{
		transfer.GET("/:collection/export", h.DataHandler.ExportCSV)
		transfer.POST("/:collection/import", h.DataHandler.ImportCSV)
		transfer.POST("/:collection/sheets/export", h.DataHandler.ExportToSheets)
		transfer.POST("/:collection/sheets/import", h.DataHandler.ImportFromSheets)
	}

	// ==================== Settings ====================
	settings := api.Group("/settings")
	settings.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireRole(auth.RoleManager))
	{
		settings.GET("", h.DataHandler.GetSettings)
		settings.PUT("", h.DataHandler.SaveSettings)
		settings.GET("/sheets", h.DataHandler.GetSheetsConfig)
		settings.PUT("/sheets", h.DataHandler.SaveSheetsConfig)
	}

	// ==================== Reports ====================
	reports := api.Group("/reports")
	reports.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireRole(auth.RoleManager, auth.RoleAccountant))
	{
		reports.GET("/financial", h.ReportHandler.Financial)
		reports.GET("/vehicles", h.ReportHandler.VehiclePerformance)
		reports.GET("/customers", h.ReportHandler.CustomerBehavior)
		reports.POST("/:type/export", h.ReportHandler.Export)
	}

	// ==================== Dashboard ====================
	// Landing page, open to any signed-in user.
	dashboard := api.Group("/dashboard")
	dashboard.Use(h.AuthMiddleware.Auth())
	{
		dashboard.GET("/stats", h.ReportHandler.Dashboard)
	}

	// ==================== Finances ====================
	finances := api.Group("/finances")
	finances.Use(h.AuthMiddleware.Auth(), h.AuthMiddleware.RequireRole(auth.RoleAccountant))
	{
		finances.GET("/summary", h.ReportHandler.Finances)
	}
}
