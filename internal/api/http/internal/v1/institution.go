package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/senservices/backend/internal/domain"
)

func (h *Handler) initInstitutionRoutes(api *gin.RouterGroup) {
	institutions := api.Group("/institutions")

	institutions.GET("", h.institutionList)
	institutions.GET("/:id", h.institutionGetByID)

	admin := institutions.Group("", h.userIdentityMiddleware, h.requireRoles(domain.RoleAdmin))
	admin.POST("", h.institutionCreate)
	admin.PUT("/:id", h.institutionUpdate)
	admin.DELETE("/:id", h.institutionDelete)
}

type institutionRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=128"`
	Department string `json:"department" binding:"required"`
	Domain     string `json:"domain" binding:"required"`
	Locality   string `json:"locality" binding:"required"`
}

// @Summary Liste des institutions
// @Tags Institutions
// @ModuleID institutionList
// @Produce json
// @Success 200 {array} domain.Institution
// @Router /institutions [get]
func (h *Handler) institutionList(c *gin.Context) {
	institutions, err := h.services.Institutions.GetAll(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, institutions)
}

// @Summary Institution par identifiant
// @Tags Institutions
// @ModuleID institutionGetByID
// @Produce json
// @Param id path string true "identifiant de l'institution"
// @Success 200 {object} domain.Institution
// @Failure 404 {object} ErrorStruct
// @Router /institutions/{id} [get]
func (h *Handler) institutionGetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	institution, err := h.services.Institutions.GetOneByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, institution)
}

// @Summary Création d'une institution
// @Tags Institutions
// @ModuleID institutionCreate
// @Accept json
// @Produce json
// @Param input body institutionRequest true "données de l'institution"
// @Success 201 {object} domain.Institution
// @Failure 400 {object} ValidationErrorStruct
// @Failure 409 {object} ErrorStruct
// @Security CookieAuth
// @Router /institutions [post]
func (h *Handler) institutionCreate(c *gin.Context) {
	var request institutionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	institution := &domain.Institution{
		ID:         id,
		Name:       request.Name,
		Department: request.Department,
		Domain:     request.Domain,
		Locality:   request.Locality,
	}

	if err := h.services.Institutions.Create(c.Request.Context(), institution); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, institution)
}

// @Summary Mise à jour d'une institution
// @Tags Institutions
// @ModuleID institutionUpdate
// @Accept json
// @Produce json
// @Param id path string true "identifiant de l'institution"
// @Param input body institutionRequest true "données de l'institution"
// @Success 200 {object} domain.Institution
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /institutions/{id} [put]
func (h *Handler) institutionUpdate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request institutionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationErrorResponse(c, err)
		return
	}

	institution := &domain.Institution{
		ID:         id,
		Name:       request.Name,
		Department: request.Department,
		Domain:     request.Domain,
		Locality:   request.Locality,
	}

	if err := h.services.Institutions.Update(c.Request.Context(), institution); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, institution)
}

// @Summary Suppression d'une institution
// @Tags Institutions
// @ModuleID institutionDelete
// @Produce json
// @Param id path string true "identifiant de l'institution"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /institutions/{id} [delete]
func (h *Handler) institutionDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Institutions.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
