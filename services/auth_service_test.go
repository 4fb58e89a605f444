package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture() (*AuthService, *mockUserRepo) {
	users := newMockUserRepo()
	return NewAuthService(users, testSecret, time.Hour), users
}

func parseTestToken(t *testing.T, token string) *Claims {
	t.Helper()
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	return claims
}

func TestRegisterIssuesValidToken(t *testing.T) {
	svc, _ := newAuthFixture()

	user, token, err := svc.Register("Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	claims := parseTestToken(t, token)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, _, err := svc.Register("Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Register("Ana", "Lopez", "ana@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthFixture()
	registered, _, err := svc.Register("Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)

	user, token, err := svc.Login("ana@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, user.ID, parseTestToken(t, token).UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	_, _, err := svc.Register("Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login("ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email is indistinguishable from a wrong password.
	_, _, err = svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc, _ := newAuthFixture()
	registered, _, err := svc.Register("Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)

	user, err := svc.Profile(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)

	_, err = svc.Profile(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
