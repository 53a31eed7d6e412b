package handlers

import (
	"net/http"

	"sgf_demandas/internal/adapter/http/dto/request"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler manages the service price catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// @Summary  List catalog items
// @Tags     catalog
// @Produce  json
// @Success  200 {array} entities.CatalogItem
// @Router   /catalog [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary  Add a catalog item
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Success  201 {object} entities.CatalogItem
// @Router   /catalog [post]
func (h *CatalogHandler) AddItem(c *gin.Context) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Add(c.Request.Context(), entities.CatalogItem{
		Name:        payload.Name,
		UnitValue:   payload.UnitValue,
		UnitMeasure: payload.UnitMeasure,
		FixedBDI:    payload.FixedBDI,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary  Remove a catalog item
// @Tags     catalog
// @Success  204
// @Router   /catalog/{id} [delete]
func (h *CatalogHandler) RemoveItem(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
