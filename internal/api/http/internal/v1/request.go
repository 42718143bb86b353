package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/service"
)

func (h *Handler) initRequestRoutes(api *gin.RouterGroup) {
	requests := api.Group("/requests", h.userIdentityMiddleware)

	requests.POST("", h.requestCreate)
	requests.GET("/me", h.requestListMine)
	requests.GET("/:id", h.requestGetByID)

	agents := requests.Group("", h.requireRoles(domain.RoleFonctionnaire, domain.RoleAdmin))
	agents.GET("", h.requestList)
	agents.GET("/institution/:id", h.requestListByInstitution)
	agents.PATCH("/:id/state", h.requestUpdateState)

	requests.DELETE("/:id", h.requireRoles(domain.RoleAdmin), h.requestDelete)
}

type createRequestRequest struct {
	ServiceID     uuid.UUID   `json:"service_id" binding:"required"`
	InstitutionID uuid.UUID   `json:"institution_id" binding:"required"`
	DocumentIDs   []uuid.UUID `json:"document_ids"`
}

// @Summary Dépôt d'une demande
// @Tags Demandes
// @Description L'institution doit être rattachée au service et chaque document référencé doit exister
// @ModuleID requestCreate
// @Accept json
// @Produce json
// @Param input body createRequestRequest true "données de la demande"
// @Success 201 {object} domain.Request
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /requests [post]
func (h *Handler) requestCreate(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	var request createRequestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	created, err := h.services.Requests.Create(c.Request.Context(), service.CreateRequestInput{
		CitizenID:     principal.UserID,
		ServiceID:     request.ServiceID,
		InstitutionID: request.InstitutionID,
		DocumentIDs:   request.DocumentIDs,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Demandes du citoyen connecté
// @Tags Demandes
// @ModuleID requestListMine
// @Produce json
// @Success 200 {array} domain.Request
// @Security CookieAuth
// @Router /requests/me [get]
func (h *Handler) requestListMine(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	requests, err := h.services.Requests.GetAllByCitizen(c.Request.Context(), principal.UserID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// @Summary Demande par identifiant
// @Tags Demandes
// @ModuleID requestGetByID
// @Produce json
// @Param id path string true "identifiant de la demande"
// @Success 200 {object} domain.Request
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /requests/{id} [get]
func (h *Handler) requestGetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := h.services.Requests.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// @Summary Liste de toutes les demandes
// @Tags Demandes
// @ModuleID requestList
// @Produce json
// @Success 200 {array} domain.Request
// @Failure 403 {object} ErrorStruct
// @Security CookieAuth
// @Router /requests [get]
func (h *Handler) requestList(c *gin.Context) {
	requests, err := h.services.Requests.GetAll(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// @Summary Demandes d'une institution
// @Tags Demandes
// @ModuleID requestListByInstitution
// @Produce json
// @Param id path string true "identifiant de l'institution"
// @Success 200 {array} domain.Request
// @Failure 403 {object} ErrorStruct
// @Security CookieAuth
// @Router /requests/institution/{id} [get]
func (h *Handler) requestListByInstitution(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	requests, err := h.services.Requests.GetAllByInstitution(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

type updateRequestStateRequest struct {
	State domain.RequestState `json:"state" binding:"required,oneof=confirme termine rejete"`
}

// @Summary Changement d'état d'une demande
// @Tags Demandes
// @Description Les transitions ne vont que vers l'avant; le fonctionnaire traitant est ajouté à l'historique
// @ModuleID requestUpdateState
// @Accept json
// @Produce json
// @Param id path string true "identifiant de la demande"
// @Param input body updateRequestStateRequest true "nouvel état"
// @Success 200 {object} domain.Request
// @Failure 400 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /requests/{id}/state [patch]
func (h *Handler) requestUpdateState(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request updateRequestStateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	updated, err := h.services.Requests.UpdateState(c.Request.Context(), id, request.State, principal.UserID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Suppression d'une demande
// @Tags Demandes
// @ModuleID requestDelete
// @Produce json
// @Param id path string true "identifiant de la demande"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /requests/{id} [delete]
func (h *Handler) requestDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Requests.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
