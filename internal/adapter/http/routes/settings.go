package routes

import (
	"sgf_demandas/internal/adapter/http/handlers"
	"sgf_demandas/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathCompanies = "/companies"
	PathUsers     = "/users"
	PathBackup    = "/backup"
)

func addSettingsRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, companyHandler *handlers.CompanyHandler, authHandler *handlers.AuthHandler, backupHandler *handlers.BackupHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.ListItems)
		catalog.POST("", catalogHandler.AddItem)
		catalog.DELETE("/:id", catalogHandler.RemoveItem)
	}

	companies := rg.Group(PathCompanies)
	{
		companies.GET("", companyHandler.ListCompanies)
		companies.POST("", companyHandler.AddCompany)
		companies.DELETE("/:id", companyHandler.RemoveCompany)
	}

	// Account management and restore are ADMIN territory.
	users := rg.Group(PathUsers)
	{
		users.GET("", authHandler.ListUsers)
		users.POST("", middleware.RequireAdmin(), authHandler.AddUser)
		users.DELETE("/:username", authHandler.RemoveUser)
	}

	backup := rg.Group(PathBackup)
	{
		backup.GET("/export", backupHandler.Export)
		backup.POST("/import", middleware.RequireAdmin(), backupHandler.Import)
	}
}
