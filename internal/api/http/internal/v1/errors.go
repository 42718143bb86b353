package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	UnauthorizedCode    = 100
	UnauthorizedMessage = "authentification requise"
	ForbiddenCode       = 101
	ForbiddenMessage    = "accès refusé"
	InvalidIDCode       = 102
	InvalidIDMessage    = "identifiant invalide"
	DuplicateEntryCode  = 103
	DuplicateEntryMsg   = "la ressource existe déjà"

	UserNotFoundCode          = 1001
	UserNotFoundMessage       = "utilisateur introuvable"
	PhoneAlreadyExistsCode    = 1002
	PhoneAlreadyExistsMessage = "le numéro de téléphone existe déjà"
	CNIAlreadyExistsCode      = 1003
	CNIAlreadyExistsMessage   = "le numéro CNI existe déjà"
	EmailAlreadyExistsCode    = 1004
	EmailAlreadyExistsMessage = "l'adresse email existe déjà"

	AccountNotFoundCode         = 2001
	AccountNotFoundMessage      = "compte introuvable"
	AccountAlreadyExistsCode    = 2002
	AccountAlreadyExistsMessage = "le compte existe déjà"
	InvalidCredentialsCode      = 2003
	InvalidCredentialsMessage   = "identifiants invalides"
	OtpMismatchCode             = 2004
	OtpMismatchMessage          = "code de vérification invalide"
	OtpNotIssuedCode            = 2005
	OtpNotIssuedMessage         = "aucun code de vérification en attente"
	OtpCooldownCode             = 2006
	OtpCooldownMessage          = "veuillez patienter avant de redemander un code"
	ResetTokenInvalidCode       = 2007
	ResetTokenInvalidMessage    = "code de réinitialisation invalide"
	ResetTokenExpiredCode       = 2008
	ResetTokenExpiredMessage    = "code de réinitialisation expiré"

	InstitutionNotFoundCode      = 3001
	InstitutionNotFoundMessage   = "institution introuvable"
	ServiceNotFoundCode          = 3002
	ServiceNotFoundMessage       = "service introuvable"
	InstitutionNotLinkedCode     = 3003
	InstitutionNotLinkedMessage  = "institution not part of service"
	InstitutionAlreadyExistsCode = 3004
	InstitutionAlreadyExistsMsg  = "l'institution existe déjà"

	DocumentNotFoundCode    = 4001
	DocumentNotFoundMessage = "document introuvable"

	RequestNotFoundCode      = 5001
	RequestNotFoundMessage   = "demande introuvable"
	InvalidTransitionCode    = 5002
	InvalidTransitionMessage = "transition d'état invalide"
	RendezvousNotFoundCode   = 5003
	RendezvousNotFoundMsg    = "rendez-vous introuvable"
	RendezvousInPastCode     = 5004
	RendezvousInPastMessage  = "le rendez-vous doit être dans le futur"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}
