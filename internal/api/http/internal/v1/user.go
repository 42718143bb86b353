package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senservices/backend/internal/domain"
)

func (h *Handler) initUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", h.userIdentityMiddleware)
	users.GET("/me", h.citoyenMe)

	admins := api.Group("/admins", h.userIdentityMiddleware, h.requireRoles(domain.RoleAdmin))
	admins.GET("", h.adminList)
}

// @Summary Liste des administrateurs
// @Tags Utilisateurs
// @ModuleID adminList
// @Produce json
// @Success 200 {array} domain.User
// @Failure 403 {object} ErrorStruct
// @Security CookieAuth
// @Router /admins [get]
func (h *Handler) adminList(c *gin.Context) {
	users, err := h.services.Users.GetAllByRole(c.Request.Context(), domain.RoleAdmin)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
