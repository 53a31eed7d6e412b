package handlers

import (
	"net/http"

	"sgf_demandas/internal/adapter/http/dto/request"
	"sgf_demandas/internal/adapter/http/dto/response"
	"sgf_demandas/internal/adapter/http/middleware"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DemandHandler exposes the demand registry over HTTP.

type DemandHandler struct {
	usecase usecase.IDemandUseCase
}

func NewDemandHandler(uc usecase.IDemandUseCase) *DemandHandler {
	return &DemandHandler{usecase: uc}
}

// UpsertDemand creates a demand or replaces it when the payload carries a
// known id.
//
// @Summary  Create or replace a demand
// @Tags     demands
// @Accept   json
// @Produce  json
// @Success  201 {object} response.DemandResponse
// @Router   /demands [post]
func (h *DemandHandler) UpsertDemand(c *gin.Context) {
	var payload request.DemandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDemand(d))
}

// ListDemands returns the registry newest-first.
//
// @Summary  List demands
// @Tags     demands
// @Produce  json
// @Success  200 {array} response.DemandResponse
// @Router   /demands [get]
func (h *DemandHandler) ListDemands(c *gin.Context) {
	ds, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemands(ds))
}

// GetDemand returns a single demand by id.
//
// @Summary  Get a demand
// @Tags     demands
// @Produce  json
// @Success  200 {object} response.DemandResponse
// @Router   /demands/{id} [get]
func (h *DemandHandler) GetDemand(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemand(d))
}

// DeleteDemand removes a demand. Restricted to ADMIN.
//
// @Summary  Delete a demand
// @Tags     demands
// @Success  204
// @Router   /demands/{id} [delete]
func (h *DemandHandler) DeleteDemand(c *gin.Context) {
	role := middleware.RoleFromContext(c)
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id"), role); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStatus reassigns the demand's workflow state.
//
// @Summary  Update demand status
// @Tags     demands
// @Accept   json
// @Produce  json
// @Success  200 {object} response.DemandResponse
// @Router   /demands/{id}/status [patch]
func (h *DemandHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.DemandStatus(payload.Status), payload.CompletionDate)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDemand(d))
}
