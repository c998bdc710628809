package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestTokenStoreLifecycle(t *testing.T) {
	store := NewTokenStore()

	_, ok := store.Read()
	assert.False(t, ok)

	store.Init("tok-1")
	token, ok := store.Read()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)

	store.Teardown()
	_, ok = store.Read()
	assert.False(t, ok)
}

func TestExpiredDetectsPastExp(t *testing.T) {
	now := time.Now()
	assert.True(t, Expired(signedToken(t, now.Add(-time.Hour)), now))
	assert.False(t, Expired(signedToken(t, now.Add(time.Hour)), now))
}

func TestExpiredToleratesOpaqueTokens(t *testing.T) {
	assert.False(t, Expired("not-a-jwt", time.Now()))
	assert.False(t, Expired("", time.Now()))
}

func TestExpiredToleratesMissingExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	assert.False(t, Expired(signed, time.Now()))
}
