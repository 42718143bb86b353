package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/service"
)

func (h *Handler) initRendezvousRoutes(api *gin.RouterGroup) {
	rendezvous := api.Group("/rendezvous", h.userIdentityMiddleware)

	rendezvous.POST("", h.rendezvousBook)
	rendezvous.GET("/me", h.rendezvousListMine)
	rendezvous.GET("/:id", h.rendezvousGetByID)

	agents := rendezvous.Group("", h.requireRoles(domain.RoleFonctionnaire, domain.RoleAdmin))
	agents.GET("/institution/:id", h.rendezvousListByInstitution)
	agents.PUT("/:id", h.rendezvousUpdate)

	rendezvous.DELETE("/:id", h.rendezvousCancel)
}

type bookRendezvousRequest struct {
	InstitutionID uuid.UUID `json:"institution_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	Reason        string    `json:"reason" binding:"required,min=2,max=256"`
}

// @Summary Prise de rendez-vous
// @Tags Rendez-vous
// @Description Le rendez-vous doit être dans le futur, auprès d'une institution existante
// @ModuleID rendezvousBook
// @Accept json
// @Produce json
// @Param input body bookRendezvousRequest true "données du rendez-vous"
// @Success 201 {object} domain.Rendezvous
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /rendezvous [post]
func (h *Handler) rendezvousBook(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	var request bookRendezvousRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	booked, err := h.services.Rendezvous.Book(c.Request.Context(), service.BookRendezvousInput{
		CitizenID:     principal.UserID,
		InstitutionID: request.InstitutionID,
		ScheduledAt:   request.ScheduledAt,
		Reason:        request.Reason,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, booked)
}

// @Summary Rendez-vous du citoyen connecté
// @Tags Rendez-vous
// @ModuleID rendezvousListMine
// @Produce json
// @Success 200 {array} domain.Rendezvous
// @Security CookieAuth
// @Router /rendezvous/me [get]
func (h *Handler) rendezvousListMine(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	rendezvous, err := h.services.Rendezvous.GetAllByCitizen(c.Request.Context(), principal.UserID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, rendezvous)
}

// @Summary Rendez-vous par identifiant
// @Tags Rendez-vous
// @ModuleID rendezvousGetByID
// @Produce json
// @Param id path string true "identifiant du rendez-vous"
// @Success 200 {object} domain.Rendezvous
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /rendezvous/{id} [get]
func (h *Handler) rendezvousGetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rendezvous, err := h.services.Rendezvous.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, rendezvous)
}

// @Summary Rendez-vous d'une institution
// @Tags Rendez-vous
// @ModuleID rendezvousListByInstitution
// @Produce json
// @Param id path string true "identifiant de l'institution"
// @Success 200 {array} domain.Rendezvous
// @Failure 403 {object} ErrorStruct
// @Security CookieAuth
// @Router /rendezvous/institution/{id} [get]
func (h *Handler) rendezvousListByInstitution(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rendezvous, err := h.services.Rendezvous.GetAllByInstitution(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, rendezvous)
}

type updateRendezvousRequest struct {
	ScheduledAt *time.Time             `json:"scheduled_at"`
	Reason      string                 `json:"reason" binding:"omitempty,min=2,max=256"`
	State       domain.RendezvousState `json:"state" binding:"omitempty,oneof=planifie honore annule"`
}

// @Summary Mise à jour d'un rendez-vous
// @Tags Rendez-vous
// @ModuleID rendezvousUpdate
// @Accept json
// @Produce json
// @Param id path string true "identifiant du rendez-vous"
// @Param input body updateRendezvousRequest true "champs à modifier"
// @Success 200 {object} domain.Rendezvous
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /rendezvous/{id} [put]
func (h *Handler) rendezvousUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request updateRendezvousRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	rendezvous, err := h.services.Rendezvous.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	if request.ScheduledAt != nil {
		rendezvous.ScheduledAt = *request.ScheduledAt
	}
	if request.Reason != "" {
		rendezvous.Reason = request.Reason
	}
	if request.State != "" {
		rendezvous.State = request.State
	}

	if err := h.services.Rendezvous.Update(c.Request.Context(), rendezvous); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, rendezvous)
}

// @Summary Annulation d'un rendez-vous
// @Tags Rendez-vous
// @Description Supprime le rendez-vous du planning
// @ModuleID rendezvousCancel
// @Produce json
// @Param id path string true "identifiant du rendez-vous"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /rendezvous/{id} [delete]
func (h *Handler) rendezvousCancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Rendezvous.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
