package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsboard/internal/domain"
)

const testSecret = "test-secret"

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		Username: "alice",
		Role:     domain.RoleAdmin,
	}
}

func TestIssueAndVerify(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	tokens := NewTokenService(testSecret, -time.Minute)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("another-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tokens.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenString)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	token, err := tokens.Issue(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = tokens.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
