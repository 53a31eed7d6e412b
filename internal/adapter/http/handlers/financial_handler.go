package handlers

import (
	"net/http"

	"sgf_demandas/internal/adapter/http/dto/request"
	"sgf_demandas/internal/adapter/http/dto/response"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FinancialHandler manages the priced line items of a demand.

type FinancialHandler struct {
	usecase usecase.IFinancialUseCase
}

func NewFinancialHandler(uc usecase.IFinancialUseCase) *FinancialHandler {
	return &FinancialHandler{usecase: uc}
}

// AddLineItem prices a catalog item for the demand and appends it.
//
// @Summary  Attach a priced line item
// @Tags     financial
// @Accept   json
// @Produce  json
// @Success  201 {object} response.DemandResponse
// @Router   /demands/{id}/items [post]
func (h *FinancialHandler) AddLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.AddLineItem(c.Request.Context(), c.Param("id"), payload.CatalogItemID, payload.Quantity, payload.BDI)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDemand(d))
}

// RemoveLineItem detaches a line item from the demand.
//
// @Summary  Remove a line item
// @Tags     financial
// @Produce  json
// @Success  200 {object} response.DemandResponse
// @Router   /demands/{id}/items/{itemId} [delete]
func (h *FinancialHandler) RemoveLineItem(c *gin.Context) {
	d, err := h.usecase.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemand(d))
}
