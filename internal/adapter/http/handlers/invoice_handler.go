package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"sgf_demandas/internal/adapter/http/dto/response"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler drives completed demands through payment.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// InvoiceDemand charges the demand's derived total through the payment
// gateway and marks it Faturada.
//
// @Summary  Invoice a completed demand
// @Tags     invoicing
// @Accept   json
// @Produce  json
// @Success  200 {object} response.InvoiceResponse
// @Router   /demands/{id}/invoice [post]
func (h *InvoiceHandler) InvoiceDemand(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	d, payment, err := h.usecase.InvoiceDemand(c.Request.Context(), c.Param("id"), json.RawMessage(raw))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.InvoiceResponse{Demand: response.FromDemand(d), Payment: payment})
}
