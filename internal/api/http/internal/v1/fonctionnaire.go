package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/service"
)

func (h *Handler) initFonctionnaireRoutes(api *gin.RouterGroup) {
	fonctionnaires := api.Group("/fonctionnaires")

	authGroup := fonctionnaires.Group("/auth")
	authGroup.POST("/sign-up", h.fonctionnaireSignUp)
	authGroup.POST("/sign-in", h.fonctionnaireSignIn)
	authGroup.POST("/logout", h.logout)

	authenticated := fonctionnaires.Group("", h.userIdentityMiddleware)
	authenticated.GET("/me", h.fonctionnaireMe)
	authenticated.GET("", h.requireRoles(domain.RoleAdmin), h.fonctionnaireList)
	authenticated.GET("/:id", h.citoyenGetByID)
	authenticated.PUT("/:id", h.requireRoles(domain.RoleAdmin), h.fonctionnaireUpdate)
	authenticated.DELETE("/:id", h.requireRoles(domain.RoleAdmin), h.citoyenDelete)
}

type fonctionnaireSignUpRequest struct {
	CNI           string    `json:"cni" binding:"required,cni"`
	Phone         string    `json:"phone" binding:"required,phonenumber"`
	FirstName     string    `json:"first_name" binding:"required,min=2,max=64"`
	LastName      string    `json:"last_name" binding:"required,min=2,max=64"`
	Email         string    `json:"email" binding:"required,email"`
	Password      string    `json:"password" binding:"required,min=8,max=64"`
	InstitutionID uuid.UUID `json:"institution_id" binding:"required"`
}

// @Summary Inscription fonctionnaire
// @Tags Fonctionnaires Auth
// @Description Crée un profil fonctionnaire rattaché à une institution existante
// @ModuleID fonctionnaireSignUp
// @Accept json
// @Produce json
// @Param input body fonctionnaireSignUpRequest true "données d'inscription"
// @Success 201 {object} authResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Router /fonctionnaires/auth/sign-up [post]
func (h *Handler) fonctionnaireSignUp(c *gin.Context) {
	var request fonctionnaireSignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.AgentAuth.SignUp(c.Request.Context(), service.AgentSignUpInput{
		CNI:           request.CNI,
		Phone:         request.Phone,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		Password:      request.Password,
		InstitutionID: request.InstitutionID,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	h.setAuthCookie(c, result.Token, result.TokenTTL)
	c.JSON(http.StatusCreated, authResponse{User: result.User})
}

type fonctionnaireSignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Connexion fonctionnaire
// @Tags Fonctionnaires Auth
// @Description Authentifie un fonctionnaire par email et mot de passe
// @ModuleID fonctionnaireSignIn
// @Accept json
// @Produce json
// @Param input body fonctionnaireSignInRequest true "identifiants"
// @Success 200 {object} authResponse
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /fonctionnaires/auth/sign-in [post]
func (h *Handler) fonctionnaireSignIn(c *gin.Context) {
	var request fonctionnaireSignInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.AgentAuth.SignIn(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	h.setAuthCookie(c, result.Token, result.TokenTTL)
	c.JSON(http.StatusOK, authResponse{User: result.User})
}

// @Summary Profil du fonctionnaire connecté
// @Tags Fonctionnaires
// @ModuleID fonctionnaireMe
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorStruct
// @Security CookieAuth
// @Router /fonctionnaires/me [get]
func (h *Handler) fonctionnaireMe(c *gin.Context) {
	h.citoyenMe(c)
}

// @Summary Liste des fonctionnaires
// @Tags Fonctionnaires
// @ModuleID fonctionnaireList
// @Produce json
// @Success 200 {array} domain.User
// @Failure 403 {object} ErrorStruct
// @Security CookieAuth
// @Router /fonctionnaires [get]
func (h *Handler) fonctionnaireList(c *gin.Context) {
	users, err := h.services.Users.GetAllByRole(c.Request.Context(), domain.RoleFonctionnaire)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

type updateFonctionnaireRequest struct {
	Phone         string     `json:"phone" binding:"omitempty,phonenumber"`
	FirstName     string     `json:"first_name" binding:"omitempty,min=2,max=64"`
	LastName      string     `json:"last_name" binding:"omitempty,min=2,max=64"`
	Email         string     `json:"email" binding:"omitempty,email"`
	InstitutionID *uuid.UUID `json:"institution_id"`
}

// @Summary Mise à jour d'un fonctionnaire
// @Tags Fonctionnaires
// @ModuleID fonctionnaireUpdate
// @Accept json
// @Produce json
// @Param id path string true "identifiant du fonctionnaire"
// @Param input body updateFonctionnaireRequest true "champs à modifier"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Security CookieAuth
// @Router /fonctionnaires/{id} [put]
func (h *Handler) fonctionnaireUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request updateFonctionnaireRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Users.Update(c.Request.Context(), service.UpdateUserInput{
		ID:            id,
		Phone:         request.Phone,
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		InstitutionID: request.InstitutionID,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
