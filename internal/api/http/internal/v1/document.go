package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senservices/backend/internal/service"
)

// maxDocumentSize caps uploads at 10 MiB.
const maxDocumentSize = 10 << 20

func (h *Handler) initDocumentRoutes(api *gin.RouterGroup) {
	documents := api.Group("/documents", h.userIdentityMiddleware)

	documents.POST("", h.documentUpload)
	documents.GET("", h.documentListMine)
	documents.GET("/:id", h.documentGetMeta)
	documents.GET("/:id/download", h.documentDownload)
	documents.DELETE("/:id", h.documentDelete)
}

// @Summary Téléversement d'un document
// @Tags Documents
// @Description Enregistre le fichier tel quel; un document est immuable une fois créé
// @ModuleID documentUpload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "fichier à téléverser"
// @Success 201 {object} domain.Document
// @Failure 400 {object} ErrorStruct
// @Security CookieAuth
// @Router /documents [post]
func (h *Handler) documentUpload(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, UnknownErrorCode, "fichier manquant")
		return
	}

	if fileHeader.Size > maxDocumentSize {
		errorResponse(c, http.StatusBadRequest, UnknownErrorCode, "fichier trop volumineux")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, maxDocumentSize))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	document, err := h.services.Documents.Upload(c.Request.Context(), service.UploadDocumentInput{
		UploaderID:   principal.UserID,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Payload:      payload,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

// @Summary Documents du citoyen connecté
// @Tags Documents
// @ModuleID documentListMine
// @Produce json
// @Success 200 {array} domain.Document
// @Security CookieAuth
// @Router /documents [get]
func (h *Handler) documentListMine(c *gin.Context) {
	principal, err := h.getPrincipal(c)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, UnauthorizedCode, UnauthorizedMessage)
		return
	}

	documents, err := h.services.Documents.GetAllByUploader(c.Request.Context(), principal.UserID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

// @Summary Métadonnées d'un document
// @Tags Documents
// @ModuleID documentGetMeta
// @Produce json
// @Param id path string true "identifiant du document"
// @Success 200 {object} domain.Document
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /documents/{id} [get]
func (h *Handler) documentGetMeta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	document, err := h.services.Documents.GetMetaByID(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// @Summary Téléchargement d'un document
// @Tags Documents
// @ModuleID documentDownload
// @Produce octet-stream
// @Param id path string true "identifiant du document"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /documents/{id}/download [get]
func (h *Handler) documentDownload(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	document, err := h.services.Documents.Download(c.Request.Context(), id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.OriginalName))
	c.Data(http.StatusOK, document.MimeType, document.Payload)
}

// @Summary Suppression d'un document
// @Tags Documents
// @ModuleID documentDelete
// @Produce json
// @Param id path string true "identifiant du document"
// @Success 204
// @Failure 404 {object} ErrorStruct
// @Security CookieAuth
// @Router /documents/{id} [delete]
func (h *Handler) documentDelete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Documents.Delete(c.Request.Context(), id); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
