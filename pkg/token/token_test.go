package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorax/invorax-go/pkg/token"
)

// signed arma un JWT firmado con un secreto cualquiera; el paquete no valida la
// firma, solo lee los claims.
func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-test"))
	require.NoError(t, err)
	return raw
}

func TestExpiresAt_LeeElClaimExp(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signed(t, jwt.MapClaims{"exp": exp.Unix(), "user_id": 7})

	got, err := token.ExpiresAt(raw)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))
}

func TestExpiresAt_SinExp_DevuelveCero(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"user_id": 7})

	got, err := token.ExpiresAt(raw)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestIsExpired_TokenVigente(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	assert.False(t, token.IsExpired(raw, 30*time.Second))
}

func TestIsExpired_TokenVencido(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	assert.True(t, token.IsExpired(raw, 30*time.Second))
}

// El margen cuenta: un token al que le quedan segundos ya se considera vencido
// para no lanzar peticiones que morirán en vuelo.
func TestIsExpired_DentroDelMargen(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"exp": time.Now().Add(10 * time.Second).Unix()})
	assert.True(t, token.IsExpired(raw, 30*time.Second))
}

func TestIsExpired_TokenIlegible_SeTrataComoVencido(t *testing.T) {
	assert.True(t, token.IsExpired("no-es-un-jwt", 0))
	assert.True(t, token.IsExpired("", 0))
}

func TestIsExpired_SinExp_SeAsumeVigente(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"user_id": 7})
	assert.False(t, token.IsExpired(raw, 30*time.Second))
}
