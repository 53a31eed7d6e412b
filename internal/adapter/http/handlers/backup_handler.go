package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BackupHandler moves the whole data set across the JSON boundary.

type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// Export emits the full data set as a single JSON document.
//
// @Summary  Export all data
// @Tags     backup
// @Produce  json
// @Success  200 {object} usecase.BackupPayload
// @Router   /backup/export [get]
func (h *BackupHandler) Export(c *gin.Context) {
	payload, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="sgf_backup.json"`)
	c.JSON(http.StatusOK, payload)
}

// Import replaces the collections present in the uploaded document. The body
// is validated completely before anything is applied.
//
// @Summary  Import a data set
// @Tags     backup
// @Accept   json
// @Success  204
// @Router   /backup/import [post]
func (h *BackupHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Import(c.Request.Context(), json.RawMessage(raw)); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
