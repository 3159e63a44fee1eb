package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts only "Authorization: Bearer <token>".
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(ctxUserIDKey, principal.BuyerID)
		c.Set(ctxUserRoleKey, principal.Role)
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": principal.BuyerID.String(),
			"role":    principal.Role.String(),
		})
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !role.AtLeast(minRole) {
			abortJSON(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": msg}})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (auth.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(auth.Role)
	return role, ok
}

// GetPrincipal returns the identity set by RequireAuth.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return auth.Principal{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return auth.Principal{}, false
	}
	return auth.Principal{BuyerID: id, Role: role}, true
}
