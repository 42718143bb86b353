package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/service"
)

func (h *Handler) initCitoyenRoutes(api *gin.RouterGroup) {
	citoyens := api.Group("/citoyens")

	authGroup := citoyens.Group("/auth")
	authGroup.POST("/sign-up", h.citoyenSignUp)
	authGroup.POST("/sign-in", h.citoyenSignIn)
	authGroup.POST("/logout", h.logout)
	authGroup.POST("/verify-otp", h.citoyenVerifyOtp)
	authGroup.POST("/resend-otp", h.citoyenResendOtp)
	authGroup.POST("/password-reset", h.citoyenRequestPasswordReset)
	authGroup.POST("/password-reset/confirm", h.citoyenResetPassword)

	authenticated := citoyens.Group("", h.userIdentityMiddleware)
	authenticated.GET("/me", h.citoyenMe)
	authenticated.GET("", h.requireRoles(domain.RoleFonctionnaire, domain.RoleAdmin), h.citoyenList)
	authenticated.GET("/:id", h.citoyenGetByID)
	authenticated.PUT("/:id", h.citoyenUpdate)
	authenticated.DELETE("/:id", h.requireRoles(domain.RoleAdmin), h.citoyenDelete)
}

type citoyenSignUpRequest struct {
	CNI       string     `json:"cni" binding:"required,cni"`
	Phone     string     `json:"phone" binding:"required,phonenumber"`
	FirstName string     `json:"first_name" binding:"required,min=2,max=64"`
	LastName  string     `json:"last_name" binding:"required,min=2,max=64"`
	BirthDate *time.Time `json:"birth_date"`
	Job       string     `json:"job"`
	Sex       string     `json:"sex"`
	Password  string     `json:"password" binding:"required,min=8,max=64"`
}

type authResponse struct {
	User *domain.User `json:"user"`
}

// @Summary Inscription citoyen
// @Tags Citoyens Auth
// @Description Crée le profil citoyen, ouvre le compte et envoie le code OTP par SMS
// @ModuleID citoyenSignUp
// @Accept json
// @Produce json
// @Param input body citoyenSignUpRequest true "données d'inscription"
// @Success 201 {object} authResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /citoyens/auth/sign-up [post]
func (h *Handler) citoyenSignUp(c *gin.Context) {
	var request citoyenSignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.CitizenAuth.SignUp(c.Request.Context(), service.CitizenSignUpInput{
		CNI:       request.CNI,
		Phone:     request.Phone,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		BirthDate: request.BirthDate,
		Job:       request.Job,
		Sex:       request.Sex,
		Password:  request.Password,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	h.setAuthCookie(c, result.Token, result.TokenTTL)
	c.JSON(http.StatusCreated, authResponse{User: result.User})
}

type citoyenSignInRequest struct {
	CNI      string `json:"cni" binding:"required,cni"`
	Password string `json:"password" binding:"required"`
}

// @Summary Connexion citoyen
// @Tags Citoyens Auth
// @Description Authentifie un citoyen par CNI et mot de passe, pose le cookie de session
// @ModuleID citoyenSignIn
// @Accept json
// @Produce json
// @Param input body citoyenSignInRequest true "identifiants"
// @Success 200 {object} authResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /citoyens/auth/sign-in [post]
func (h *Handler) citoyenSignIn(c *gin.Context) {
	var request citoyenSignInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	result, err := h.services.CitizenAuth.SignIn(c.Request.Context(), request.CNI, request.Password)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	h.setAuthCookie(c, result.Token, result.TokenTTL)
	c.JSON(http.StatusOK, authResponse{User: result.User})
}

// @Summary Déconnexion
// @Tags Citoyens Auth
// @Description Supprime le cookie de session
// @ModuleID logout
// @Produce json
// @Success 204
// @Router /citoyens/auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.clearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

type verifyOtpRequest struct {
	CNI  string `json:"cni" binding:"required,cni"`
	Code string `json:"code" binding:"required,len=4,number"`
}

// @Summary Vérification OTP
// @Tags Citoyens Auth
// @Description Confirme le compte avec le code reçu par SMS
// @ModuleID citoyenVerifyOtp
// @Accept json
// @Produce json
// @Param input body verifyOtpRequest true "cni et code"
// @Success 204
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /citoyens/auth/verify-otp [post]
func (h *Handler) citoyenVerifyOtp(c *gin.Context) {
	var request verifyOtpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.VerifyOtp(c.Request.Context(), request.CNI, request.Code); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type resendOtpRequest struct {
	CNI string `json:"cni" binding:"required,cni"`
}

// @Summary Renvoi du code OTP
// @Tags Citoyens Auth
// @Description Regénère et renvoie le code de vérification, limité par un délai entre deux envois
// @ModuleID citoyenResendOtp
// @Accept json
// @Produce json
// @Param input body resendOtpRequest true "cni"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Failure 429 {object} ErrorStruct
// @Router /citoyens/auth/resend-otp [post]
func (h *Handler) citoyenResendOtp(c *gin.Context) {
	var request resendOtpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.GenerateAndSendOtp(c.Request.Context(), request.CNI); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type requestPasswordResetRequest struct {
	CNI string `json:"cni" binding:"required,cni"`
}

// @Summary Demande de réinitialisation du mot de passe
// @Tags Citoyens Auth
// @Description Envoie un code de réinitialisation par SMS. Répond 204 même si le CNI est inconnu.
// @ModuleID citoyenRequestPasswordReset
// @Accept json
// @Produce json
// @Param input body requestPasswordResetRequest true "cni"
// @Success 204
// @Failure 400 {object} ValidationErrorStruct
// @Router /citoyens/auth/password-reset [post]
func (h *Handler) citoyenRequestPasswordReset(c *gin.Context) {
	var request requestPasswordResetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.CitizenAuth.RequestPasswordReset(c.Request.Context(), request.CNI); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// @Summary Réinitialisation du mot de passe
// @Tags Citoyens Auth
// @Description Change le mot de passe avec un code de réinitialisation valide
// @ModuleID citoyenResetPassword
// @Accept json
// @Produce json
// @Param input body resetPasswordRequest true "code et nouveau mot de passe"
// @Success 204
// @Failure 400 {object} ErrorStruct
// @Router /citoyens/auth/password-reset/confirm [post]
func (h *Handler) citoyenResetPassword(c *gin.Context) {
	var request resetPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.CitizenAuth.ResetPassword(c.Request.Context(), request.Token, request.NewPassword); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Profil du citoyen connecté
// @Tags Citoyens
// @ModuleID citoyenMe
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorStruct
// @Security CookieAuth
// @Router /citoyens/me [get]
func (h *Handler) citoyenMe(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), principal.UserID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Liste des citoyens
// @Tags Citoyens
// @ModuleID citoyenList
// @Produce json
// @Success 200 {array} domain.User
// @Failure 401 {object} ErrorStruct
// @Failure 403 {object} ErrorStruct
// @Security CookieAuth
// @Router /citoyens [get]
func (h *Handler) citoyenList(c *gin.Context) {
	users, err := h.services.Users.GetAllByRole(c.Request.Context(), domain.RoleCitoyen)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Citoyen par identifiant
// @Tags Citoyens
// @ModuleID citoyenGetByID
// @Produce json
// @Param id path string true "identifiant du citoyen"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /citoyens/{id} [get]
func (h *Handler) citoyenGetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Phone     string     `json:"phone" binding:"omitempty,phonenumber"`
	FirstName string     `json:"first_name" binding:"omitempty,min=2,max=64"`
	LastName  string     `json:"last_name" binding:"omitempty,min=2,max=64"`
	BirthDate *time.Time `json:"birth_date"`
	Job       string     `json:"job"`
	Sex       string     `json:"sex"`
	Email     string     `json:"email" binding:"omitempty,email"`
}

// @Summary Mise à jour d'un citoyen
// @Tags Citoyens
// @ModuleID citoyenUpdate
// @Accept json
// @Produce json
// @Param id path string true "identifiant du citoyen"
// @Param input body updateUserRequest true "champs à modifier"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Security CookieAuth
// @Router /citoyens/{id} [put]
func (h *Handler) citoyenUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request updateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	user, err := h.services.Users.Update(c.Request.Context(), service.UpdateUserInput{
		ID:        id,
		Phone:     request.Phone,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		BirthDate: request.BirthDate,
		Job:       request.Job,
		Sex:       request.Sex,
		Email:     request.Email,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Suppression d'un citoyen
// @Tags Citoyens
// @ModuleID citoyenDelete
// @Produce json
// @Param id path string true "identifiant du citoyen"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /citoyens/{id} [delete]
func (h *Handler) citoyenDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
