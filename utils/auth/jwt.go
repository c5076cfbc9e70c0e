package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the only failure Verify reports. Expired, malformed and
// forged tokens are deliberately indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// TokenConfig holds token signing configuration. It is built once at start-up.
type TokenConfig struct {
	Secret    string
	Algorithm string // HS256, HS384 or HS512
	TTL       time.Duration
}

// TokenManager issues and verifies bearer tokens
type TokenManager struct {
	config TokenConfig
	method jwt.SigningMethod
	now    func() time.Time
}

// NewTokenManager creates a new token manager
func NewTokenManager(config TokenConfig) (*TokenManager, error) {
	if config.Secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if config.TTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	method, ok := jwt.GetSigningMethod(config.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", config.Algorithm)
	}

	return &TokenManager{
		config: config,
		method: method,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy of the manager that reads time from now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	clone := *m
	clone.now = now
	return &clone
}

// TTL returns the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.config.TTL
}

// Issue signs a token carrying the subject id and an absolute expiry.
func (m *TokenManager) Issue(subject uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(m.now().Add(m.config.TTL)),
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString([]byte(m.config.Secret))
}

// Verify checks the signature and expiry and returns the subject id.
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(m.config.Secret), nil
		},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	// Expiry at exactly the current instant counts as expired.
	if !claims.ExpiresAt.Time.After(m.now()) {
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return subject, nil
}
