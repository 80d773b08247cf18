package token

import (
	"testing"
	"time"

	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager(&config.Config{
		App: config.AppConfig{Name: "artfriendly-api-test"},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        time.Hour,
			RefreshExpiry: 24 * time.Hour,
		},
	})
}

func TestGenerateAndValidate_AccessToken(t *testing.T) {
	m := newTestManager()

	tokenString, err := m.GenerateAccessToken(Subject{MemberID: "7", Email: "a@b.com", Role: "USER"})
	require.NoError(t, err)

	claims, err := m.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.MemberID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, ACCESS, claims.TokenType)
}

func TestGenerate_RefreshTokenType(t *testing.T) {
	m := newTestManager()

	tokenString, err := m.GenerateRefreshToken(Subject{MemberID: "7"})
	require.NoError(t, err)

	claims, err := m.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, REFRESH, claims.TokenType)
}

func TestValidateToken_Expired(t *testing.T) {
	m := newTestManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	tokenString, err := m.GenerateAccessToken(Subject{MemberID: "7"})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := newTestManager()
	other.secret = []byte("another-secret-key-that-is-also-long-enough")

	tokenString, err := other.GenerateAccessToken(Subject{MemberID: "7"})
	require.NoError(t, err)

	_, err = m.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newTestManager().ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingMemberID(t *testing.T) {
	m := newTestManager()

	tokenString, err := m.GenerateAccessToken(Subject{})
	require.NoError(t, err)

	_, err = m.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
