package routes

import (
	"sgf_demandas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDemands = "/demands"
	PathReports = "/reports"
)

func addDemandRoutes(rg *gin.RouterGroup, demandHandler *handlers.DemandHandler, financialHandler *handlers.FinancialHandler, invoiceHandler *handlers.InvoiceHandler) {
	demands := rg.Group(PathDemands)
	{
		demands.GET("", demandHandler.ListDemands)
		demands.POST("", demandHandler.UpsertDemand)
		demands.GET("/:id", demandHandler.GetDemand)
		demands.DELETE("/:id", demandHandler.DeleteDemand)
		demands.PATCH("/:id/status", demandHandler.SetStatus)

		demands.POST("/:id/items", financialHandler.AddLineItem)
		demands.DELETE("/:id/items/:itemId", financialHandler.RemoveLineItem)

		demands.POST("/:id/invoice", invoiceHandler.InvoiceDemand)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.GET("/volume", reportHandler.MonthlyVolume)
		reports.GET("/projection", reportHandler.BillingProjection)
		reports.GET("/distribution", reportHandler.CategoryDistribution)
		reports.GET("/export", reportHandler.ExportDemands)
	}
}
