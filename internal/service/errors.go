package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
	ErrCNIAlreadyExists   = errors.New("cni already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrOtpMismatch          = errors.New("otp mismatch")
	ErrOtpNotIssued         = errors.New("otp not issued")
	ErrOtpCooldown          = errors.New("otp resend cooldown active")

	ErrServiceNotFound      = errors.New("service not found")
	ErrInstitutionNotFound  = errors.New("institution not found")
	ErrInstitutionNotLinked = errors.New("institution not part of service")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrInvalidTransition    = errors.New("invalid request state transition")
	ErrRendezvousNotFound   = errors.New("rendezvous not found")
	ErrRendezvousInPast     = errors.New("rendezvous scheduled in the past")

	ErrResetTokenInvalid = errors.New("reset token invalid")
	ErrResetTokenExpired = errors.New("reset token expired")
)
