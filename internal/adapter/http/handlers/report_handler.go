package handlers

import (
	"net/http"

	"sgf_demandas/internal/adapter/export"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard aggregations and the spreadsheet export.

type ReportHandler struct {
	reports usecase.IReportUseCase
	demands usecase.IDemandUseCase
}

func NewReportHandler(reports usecase.IReportUseCase, demands usecase.IDemandUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, demands: demands}
}

// filtersFromQuery reads the shared filter query parameters: month (YYYY-MM),
// empresa, tipoServico and q (free-text search).
func filtersFromQuery(c *gin.Context) usecase.Filters {
	return usecase.Filters{
		RequestMonth: c.Query("month"),
		Company:      c.Query("empresa"),
		ServiceType:  c.Query("tipoServico"),
		Search:       c.Query("q"),
	}
}

// @Summary  Dashboard summary
// @Tags     reports
// @Produce  json
// @Success  200 {object} usecase.Summary
// @Router   /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	s, err := h.reports.Summary(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary  Demand volume per request month
// @Tags     reports
// @Produce  json
// @Success  200 {array} usecase.MonthCount
// @Router   /reports/volume [get]
func (h *ReportHandler) MonthlyVolume(c *gin.Context) {
	v, err := h.reports.MonthlyVolume(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary  Billed value per billing period
// @Tags     reports
// @Produce  json
// @Success  200 {array} usecase.PeriodValue
// @Router   /reports/projection [get]
func (h *ReportHandler) BillingProjection(c *gin.Context) {
	p, err := h.reports.BillingProjection(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary  Service-type distribution per month
// @Tags     reports
// @Produce  json
// @Success  200 {array} usecase.CategoryMonth
// @Router   /reports/distribution [get]
func (h *ReportHandler) CategoryDistribution(c *gin.Context) {
	d, err := h.reports.CategoryDistribution(c.Request.Context(), filtersFromQuery(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, d)
}

// ExportDemands streams the registry and the billing projection as an XLSX
// workbook, demands newest-first.
//
// @Summary  Export demands as a spreadsheet
// @Tags     reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success  200
// @Router   /reports/export [get]
func (h *ReportHandler) ExportDemands(c *gin.Context) {
	ds, err := h.demands.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	projection, err := h.reports.BillingProjection(c.Request.Context(), usecase.Filters{})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	buf, err := export.Workbook(ds, projection)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="demandas.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
