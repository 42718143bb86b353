package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
)

func (h *Handler) initServiceRoutes(api *gin.RouterGroup) {
	services := api.Group("/services")

	services.GET("", h.serviceList)
	services.GET("/:id", h.serviceGetByID)

	admin := services.Group("", h.userIdentityMiddleware, h.requireRoles(domain.RoleAdmin))
	admin.POST("", h.serviceCreate)
	admin.PUT("/:id", h.serviceUpdate)
	admin.DELETE("/:id", h.serviceDelete)
	admin.POST("/:id/institutions/:institutionId", h.serviceLinkInstitution)
	admin.DELETE("/:id/institutions/:institutionId", h.serviceUnlinkInstitution)
}

type serviceRequest struct {
	Name           string         `json:"name" binding:"required,min=2,max=128"`
	Category       string         `json:"category" binding:"required"`
	Fee            int64          `json:"fee" binding:"gte=0"`
	ProcessingDays int            `json:"processing_days" binding:"gte=0"`
	InstitutionIDs []uuid.UUID    `json:"institution_ids"`
	Fields         []domain.Field `json:"fields"`
}

// @Summary Catalogue des services
// @Tags Services
// @ModuleID serviceList
// @Produce json
// @Success 200 {array} domain.Service
// @Router /services [get]
func (h *Handler) serviceList(c *gin.Context) {
	services, err := h.services.Catalog.GetAll(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

// @Summary Service par identifiant
// @Tags Services
// @ModuleID serviceGetByID
// @Produce json
// @Param id path string true "identifiant du service"
// @Success 200 {object} domain.Service
// @Failure 404 {object} ErrorStruct
// @Router /services/{id} [get]
func (h *Handler) serviceGetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.services.Catalog.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// @Summary Création d'un service
// @Tags Services
// @Description Toutes les institutions référencées doivent exister
// @ModuleID serviceCreate
// @Accept json
// @Produce json
// @Param input body serviceRequest true "données du service"
// @Success 201 {object} domain.Service
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /services [post]
func (h *Handler) serviceCreate(c *gin.Context) {
	var request serviceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	svc := &domain.Service{
		ID:             id,
		Name:           request.Name,
		Category:       request.Category,
		Fee:            request.Fee,
		ProcessingDays: request.ProcessingDays,
		InstitutionIDs: domain.UUIDList(request.InstitutionIDs),
		Fields:         domain.FieldList(request.Fields),
	}

	if err := h.services.Catalog.Create(c.Request.Context(), svc); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// @Summary Mise à jour d'un service
// @Tags Services
// @ModuleID serviceUpdate
// @Accept json
// @Produce json
// @Param id path string true "identifiant du service"
// @Param input body serviceRequest true "données du service"
// @Success 200 {object} domain.Service
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /services/{id} [put]
func (h *Handler) serviceUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request serviceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	svc := &domain.Service{
		ID:             id,
		Name:           request.Name,
		Category:       request.Category,
		Fee:            request.Fee,
		ProcessingDays: request.ProcessingDays,
		InstitutionIDs: domain.UUIDList(request.InstitutionIDs),
		Fields:         domain.FieldList(request.Fields),
	}

	if err := h.services.Catalog.Update(c.Request.Context(), svc); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

// @Summary Suppression d'un service
// @Tags Services
// @ModuleID serviceDelete
// @Produce json
// @Param id path string true "identifiant du service"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /services/{id} [delete]
func (h *Handler) serviceDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Catalog.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Rattachement d'une institution à un service
// @Tags Services
// @ModuleID serviceLinkInstitution
// @Produce json
// @Param id path string true "identifiant du service"
// @Param institutionId path string true "identifiant de l'institution"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /services/{id}/institutions/{institutionId} [post]
func (h *Handler) serviceLinkInstitution(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	institutionID, ok := parseIDParam(c, "institutionId")
	if !ok {
		return
	}

	if err := h.services.Catalog.LinkInstitution(c.Request.Context(), serviceID, institutionID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Détachement d'une institution d'un service
// @Tags Services
// @ModuleID serviceUnlinkInstitution
// @Produce json
// @Param id path string true "identifiant du service"
// @Param institutionId path string true "identifiant de l'institution"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /services/{id}/institutions/{institutionId} [delete]
func (h *Handler) serviceUnlinkInstitution(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	institutionID, ok := parseIDParam(c, "institutionId")
	if !ok {
		return
	}

	if err := h.services.Catalog.UnlinkInstitution(c.Request.Context(), serviceID, institutionID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
