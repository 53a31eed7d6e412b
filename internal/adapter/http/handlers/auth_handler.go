package handlers

import (
	"net/http"

	"sgf_demandas/internal/adapter/http/dto/request"
	"sgf_demandas/internal/adapter/http/dto/response"
	"sgf_demandas/internal/adapter/http/middleware"
	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/infrastructure/token"
	"sgf_demandas/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes login and account management.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	tokens  *token.Service
}

func NewAuthHandler(uc usecase.IAuthUseCase, tokens *token.Service) *AuthHandler {
	return &AuthHandler{usecase: uc, tokens: tokens}
}

// Login exchanges credentials for a signed access token.
//
// @Summary  Authenticate an operator
// @Tags     auth
// @Accept   json
// @Produce  json
// @Success  200 {object} response.LoginResponse
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	signed, err := h.tokens.Issue(user)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: signed, Username: user.Username, Role: user.Role})
}

// @Summary  List operator accounts
// @Tags     auth
// @Produce  json
// @Success  200 {array} entities.User
// @Router   /users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.usecase.ListUsers(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary  Create an operator account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Success  201 {object} entities.User
// @Router   /users [post]
func (h *AuthHandler) AddUser(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.AddUser(c.Request.Context(), payload.Username, payload.Password, entities.Role(payload.Role))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, user)
}

// RemoveUser deletes an account. Restricted to ADMIN.
//
// @Summary  Remove an operator account
// @Tags     auth
// @Success  204
// @Router   /users/{username} [delete]
func (h *AuthHandler) RemoveUser(c *gin.Context) {
	actor := middleware.RoleFromContext(c)
	if err := h.usecase.RemoveUser(c.Request.Context(), c.Param("username"), actor); err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
