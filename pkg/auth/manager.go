package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager provides logic for the signed JWT carried in the auth cookie.
type TokenManager interface {
	NewJWT(principal Principal) (string, time.Duration, error)
	Parse(accessToken string) (*Principal, error)
}

// Principal is the sanitized identity embedded as token claims. It never
// carries the password hash.
type Principal struct {
	UserID    uuid.UUID `json:"user_id"`
	CNI       string    `json:"cni,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
}

type claims struct {
	jwt.RegisteredClaims
	CNI       string `json:"cni,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type Manager struct {
	signingKey string
	tokenTTL   time.Duration
}

func NewManager(signingKey string, tokenTTL time.Duration) (*Manager, error) {
	if signingKey == "" {
		return nil, errors.New("empty signing key")
	}

	if tokenTTL == 0 {
		return nil, errors.New("empty token ttl")
	}

	return &Manager{
		signingKey: signingKey,
		tokenTTL:   tokenTTL,
	}, nil
}

func (m *Manager) NewJWT(principal Principal) (string, time.Duration, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   principal.UserID.String(),
		},
		CNI:       principal.CNI,
		Email:     principal.Email,
		Role:      principal.Role,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
	})

	signed, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, errors.New("sign jwt failed")
	}

	return signed, m.tokenTTL, nil
}

func (m *Manager) Parse(accessToken string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(accessToken, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		return nil, err
	}

	tokenClaims, ok := token.Claims.(*claims)
	if !ok {
		return nil, errors.New("error get claims from token")
	}

	userID, err := uuid.Parse(tokenClaims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token subject uuid parse: %w", err)
	}

	return &Principal{
		UserID:    userID,
		CNI:       tokenClaims.CNI,
		Email:     tokenClaims.Email,
		Role:      tokenClaims.Role,
		FirstName: tokenClaims.FirstName,
		LastName:  tokenClaims.LastName,
	}, nil
}
