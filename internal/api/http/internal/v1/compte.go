package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senservices/backend/internal/domain"
)

func (h *Handler) initCompteRoutes(api *gin.RouterGroup) {
	comptes := api.Group("/comptes", h.userIdentityMiddleware)

	comptes.GET("", h.requireRoles(domain.RoleAdmin), h.compteList)
	comptes.GET("/me", h.compteMe)
	comptes.PUT("/password", h.compteChangePassword)
	comptes.DELETE("/:id", h.requireRoles(domain.RoleAdmin), h.compteDelete)
}

// @Summary Liste des comptes
// @Tags Comptes
// @ModuleID compteList
// @Produce json
// @Success 200 {array} domain.Account
// @Failure 403 {object} ErrorStruct
// @Security CookieAuth
// @Router /comptes [get]
func (h *Handler) compteList(c *gin.Context) {
	accounts, err := h.services.Accounts.GetAll(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// @Summary Compte du citoyen connecté
// @Tags Comptes
// @ModuleID compteMe
// @Produce json
// @Success 200 {object} domain.Account
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /comptes/me [get]
func (h *Handler) compteMe(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	account, err := h.services.Accounts.GetByUserID(c.Request.Context(), principal.UserID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// @Summary Changement de mot de passe
// @Tags Comptes
// @Description Vérifie l'ancien mot de passe puis enregistre le nouveau
// @ModuleID compteChangePassword
// @Accept json
// @Produce json
// @Param input body changePasswordRequest true "ancien et nouveau mot de passe"
// @Success 204
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /comptes/password [put]
func (h *Handler) compteChangePassword(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	var request changePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.ChangePassword(c.Request.Context(), principal.UserID, request.OldPassword, request.NewPassword); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Suppression d'un compte
// @Tags Comptes
// @ModuleID compteDelete
// @Produce json
// @Param id path string true "identifiant du compte"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /comptes/{id} [delete]
func (h *Handler) compteDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Accounts.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
