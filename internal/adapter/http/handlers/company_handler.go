package handlers

import (
	"net/http"

	"sgf_demandas/internal/adapter/http/dto/request"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CompanyHandler manages the contracting companies.

type CompanyHandler struct {
	usecase usecase.ICompanyUseCase
}

func NewCompanyHandler(uc usecase.ICompanyUseCase) *CompanyHandler {
	return &CompanyHandler{usecase: uc}
}

// @Summary  List companies
// @Tags     companies
// @Produce  json
// @Success  200 {array} entities.Company
// @Router   /companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	cs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cs)
}

// @Summary  Add a company
// @Tags     companies
// @Accept   json
// @Produce  json
// @Success  201 {object} entities.Company
// @Router   /companies [post]
func (h *CompanyHandler) AddCompany(c *gin.Context) {
	var payload request.CompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Add(c.Request.Context(), payload.Name)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary  Remove a company
// @Tags     companies
// @Success  204
// @Router   /companies/{id} [delete]
func (h *CompanyHandler) RemoveCompany(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
