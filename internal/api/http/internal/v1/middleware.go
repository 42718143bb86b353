package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/pkg/auth"
	"github.com/senservices/backend/pkg/logger"
)

const principalCtx = "principal"

func (h *Handler) userIdentityMiddleware(c *gin.Context) {
	principal, err := h.parseAuthCookie(c)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Error("parse auth cookie failed", zap.Error(err))
		}
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	c.Set(principalCtx, principal)
}

func (h *Handler) parseAuthCookie(c *gin.Context) (*auth.Principal, error) {
	cookie, err := c.Cookie(h.config.Auth.JWT.CookieName)
	if err != nil {
		return nil, errors.New("auth cookie not found")
	}

	if cookie == "" {
		return nil, errors.New("auth cookie is empty")
	}

	return h.tokenManager.Parse(cookie)
}

// requireRoles runs after userIdentityMiddleware and rejects principals
// whose role is not in the allowed set.
func (h *Handler) requireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := h.getPrincipal(c)
		if err != nil {
			errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
			return
		}

		for _, role := range roles {
			if principal.Role == string(role) {
				c.Next()
				return
			}
		}

		errorResponse(c, http.StatusForbidden, ForbiddenCode, ForbiddenMessage)
	}
}

func (h *Handler) getPrincipal(c *gin.Context) (*auth.Principal, error) {
	value, ok := c.Get(principalCtx)
	if !ok {
		return nil, errors.New("principal not found in context")
	}

	principal, ok := value.(*auth.Principal)
	if !ok {
		return nil, errors.New("principal has invalid type")
	}

	return principal, nil
}

func (h *Handler) setAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetCookie(h.config.Auth.JWT.CookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

func (h *Handler) clearAuthCookie(c *gin.Context) {
	c.SetCookie(h.config.Auth.JWT.CookieName, "", -1, "/", "", false, true)
}
