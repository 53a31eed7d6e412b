// Package middleware holds the gin middlewares shared by the route groups.
package middleware

import (
	"net/http"
	"strings"

	"sgf_demandas/internal/domain/entities"
	"sgf_demandas/internal/infrastructure/token"
	"sgf_demandas/pkg"

	"github.com/gin-gonic/gin"
)

const (
	usernameKey = "auth.username"
	roleKey     = "auth.role"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed Authorization header", http.StatusUnauthorized)
	errBadToken     = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errNotAdmin     = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation restricted to administrators", http.StatusForbidden)
)

// RequireAuth verifies the Bearer token and stores the operator's identity in
// the request context for the handlers downstream.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(errBadToken.HTTPStatus, errBadToken.ToHTTPError())
			return
		}

		c.Set(usernameKey, claims.Username)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the ADMIN role.
// It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c) != entities.RoleAdmin {
			c.AbortWithStatusJSON(errNotAdmin.HTTPStatus, errNotAdmin.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RoleFromContext returns the role stored by RequireAuth, or the empty role
// when the request was not authenticated.
func RoleFromContext(c *gin.Context) entities.Role {
	v, ok := c.Get(roleKey)
	if !ok {
		return ""
	}
	role, _ := v.(entities.Role)
	return role
}

// UsernameFromContext returns the username stored by RequireAuth.
func UsernameFromContext(c *gin.Context) string {
	v, ok := c.Get(usernameKey)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}
