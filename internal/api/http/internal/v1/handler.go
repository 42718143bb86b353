package v1

import (
	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/service"
	"github.com/senservices/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Services Publics API
// @version 1.0
// @description Backend API du portail des services publics

// @BasePath /api/v1

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initCitoyenRoutes(v1)
	h.initFonctionnaireRoutes(v1)
	h.initUserRoutes(v1)
	h.initCompteRoutes(v1)
	h.initInstitutionRoutes(v1)
	h.initServiceRoutes(v1)
	h.initDocumentRoutes(v1)
	h.initRequestRoutes(v1)
	h.initRendezvousRoutes(v1)
}
