package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frozen = time.Date(2024, 11, 5, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T, at *time.Time) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(TokenConfig{Secret: "VEE_SECRET", Algorithm: "HS256", TTL: 30 * time.Minute})
	require.NoError(t, err)
	return m.WithClock(func() time.Time { return *at })
}

func TestTokenRoundTrip(t *testing.T) {
	now := frozen
	m := newTestManager(t, &now)
	subject := uuid.New()

	token, err := m.Issue(subject)
	require.NoError(t, err)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestTokenExpiry(t *testing.T) {
	now := frozen
	m := newTestManager(t, &now)

	token, err := m.Issue(uuid.New())
	require.NoError(t, err)

	now = frozen.Add(30*time.Minute - time.Second)
	_, err = m.Verify(token)
	assert.NoError(t, err, "token must still be valid one second before expiry")

	now = frozen.Add(30 * time.Minute)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expiry instant itself is expired")

	now = frozen.Add(time.Hour)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIsDeterministicForFrozenClock(t *testing.T) {
	now := frozen
	m := newTestManager(t, &now)
	subject := uuid.MustParse("8c6bb2d1-47f6-4a4c-9c41-64f24f5f0a10")

	first, err := m.Issue(subject)
	require.NoError(t, err)
	second, err := m.Issue(subject)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVerifyRejects(t *testing.T) {
	now := frozen
	m := newTestManager(t, &now)

	valid, err := m.Issue(uuid.New())
	require.NoError(t, err)

	otherSecret, err := NewTokenManager(TokenConfig{Secret: "other", Algorithm: "HS256", TTL: time.Minute})
	require.NoError(t, err)
	forged, err := otherSecret.WithClock(func() time.Time { return now }).Issue(uuid.New())
	require.NoError(t, err)

	otherAlg, err := NewTokenManager(TokenConfig{Secret: "VEE_SECRET", Algorithm: "HS512", TTL: time.Minute})
	require.NoError(t, err)
	wrongAlg, err := otherAlg.WithClock(func() time.Time { return now }).Issue(uuid.New())
	require.NoError(t, err)

	notUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}).SignedString([]byte("VEE_SECRET"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte("VEE_SECRET"))
	require.NoError(t, err)

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"tampered":     valid[:len(valid)-2] + "xx",
		"wrong secret": forged,
		"wrong alg":    wrongAlg,
		"non-uuid sub": notUUID,
		"missing exp":  noExpiry,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			subject, err := m.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Equal(t, uuid.Nil, subject)
		})
	}
}

func TestNewTokenManagerValidatesConfig(t *testing.T) {
	_, err := NewTokenManager(TokenConfig{Secret: "", Algorithm: "HS256", TTL: time.Minute})
	assert.Error(t, err)

	_, err = NewTokenManager(TokenConfig{Secret: "s", Algorithm: "RS256", TTL: time.Minute})
	assert.Error(t, err)

	_, err = NewTokenManager(TokenConfig{Secret: "s", Algorithm: "HS256"})
	assert.Error(t, err)
}
