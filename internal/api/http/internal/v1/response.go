package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/service"
	"github.com/senservices/backend/pkg/logger"
)

func errorResponse(c *gin.Context, status int, code ErrorCode, message ErrorMessage) {
	c.AbortWithStatusJSON(status, ErrorStruct{ErrorCode: code, ErrorMessage: message})
}

// serviceErrorResponse translates business errors to the standard envelope.
// Anything unmapped is a 500 and gets logged.
func serviceErrorResponse(c *gin.Context, err error) {
	for _, mapping := range serviceErrorMappings {
		if errors.Is(err, mapping.err) {
			errorResponse(c, mapping.status, mapping.code, mapping.message)
			return
		}
	}

	logger.Error("request failed", zap.Error(err))
	errorResponse(c, http.StatusInternalServerError, UnknownErrorCode, UnknownErrorMessage)
}

var serviceErrorMappings = []struct {
	err     error
	status  int
	code    ErrorCode
	message ErrorMessage
}{
	{service.ErrUserNotFound, http.StatusNotFound, UserNotFoundCode, UserNotFoundMessage},
	{service.ErrPhoneAlreadyExists, http.StatusConflict, PhoneAlreadyExistsCode, PhoneAlreadyExistsMessage},
	{service.ErrCNIAlreadyExists, http.StatusConflict, CNIAlreadyExistsCode, CNIAlreadyExistsMessage},
	{service.ErrEmailAlreadyExists, http.StatusConflict, EmailAlreadyExistsCode, EmailAlreadyExistsMessage},
	{service.ErrAccountNotFound, http.StatusNotFound, AccountNotFoundCode, AccountNotFoundMessage},
	{service.ErrAccountAlreadyExists, http.StatusConflict, AccountAlreadyExistsCode, AccountAlreadyExistsMessage},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, InvalidCredentialsCode, InvalidCredentialsMessage},
	{service.ErrOtpMismatch, http.StatusBadRequest, OtpMismatchCode, OtpMismatchMessage},
	{service.ErrOtpNotIssued, http.StatusBadRequest, OtpNotIssuedCode, OtpNotIssuedMessage},
	{service.ErrOtpCooldown, http.StatusTooManyRequests, OtpCooldownCode, OtpCooldownMessage},
	{service.ErrResetTokenInvalid, http.StatusBadRequest, ResetTokenInvalidCode, ResetTokenInvalidMessage},
	{service.ErrResetTokenExpired, http.StatusBadRequest, ResetTokenExpiredCode, ResetTokenExpiredMessage},
	{service.ErrInstitutionNotFound, http.StatusNotFound, InstitutionNotFoundCode, InstitutionNotFoundMessage},
	{service.ErrServiceNotFound, http.StatusNotFound, ServiceNotFoundCode, ServiceNotFoundMessage},
	{service.ErrInstitutionNotLinked, http.StatusBadRequest, InstitutionNotLinkedCode, InstitutionNotLinkedMessage},
	{service.ErrDocumentNotFound, http.StatusNotFound, DocumentNotFoundCode, DocumentNotFoundMessage},
	{service.ErrRequestNotFound, http.StatusNotFound, RequestNotFoundCode, RequestNotFoundMessage},
	{service.ErrInvalidTransition, http.StatusBadRequest, InvalidTransitionCode, InvalidTransitionMessage},
	{service.ErrRendezvousNotFound, http.StatusNotFound, RendezvousNotFoundCode, RendezvousNotFoundMsg},
	{service.ErrRendezvousInPast, http.StatusBadRequest, RendezvousInPastCode, RendezvousInPastMessage},
	{domain.ErrDuplicateEntry, http.StatusConflict, DuplicateEntryCode, DuplicateEntryMsg},
	{domain.ErrNotFound, http.StatusNotFound, UnknownErrorCode, "ressource introuvable"},
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response := ValidationErrorStruct{
			ErrorCode:    6000,
			ErrorMessage: "Validation error",
		}
		response.Errors = out
		c.AbortWithStatusJSON(http.StatusBadRequest, response)
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorStruct{
		ErrorCode:    6000,
		ErrorMessage: "invalid request body",
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "Ce champ est obligatoire"
	case "email":
		return "Format d'email invalide"
	case "number":
		return "Le champ doit être numérique"
	case "min":
		return fmt.Sprintf("Nombre minimum de caractères - %v", value)
	case "max":
		return fmt.Sprintf("Nombre maximum de caractères - %v", value)
	case "phonenumber":
		return "Le numéro doit commencer par 7 et compter 9 chiffres"
	case "cni":
		return "Le numéro CNI doit compter 12 à 14 chiffres"
	}
	return tag
}
