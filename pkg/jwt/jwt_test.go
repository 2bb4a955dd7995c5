package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "clave-de-prueba-muy-larga"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := Generate(testSecret, "admin", "stock-lite", 30)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("otra-clave", "admin", "stock-lite", 30)
	require.NoError(t, err)

	_, err = Parse(testSecret, token)
	assert.Error(t, err, "una firma con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Username: "admin",
	}
	expired, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Parse(testSecret, expired)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

// Un token firmado con "none" o con otro algoritmo no debe pasar.
func TestParse_MetodoDeFirmaInesperado(t *testing.T) {
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{Username: "admin"})
	unsigned, err := token.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(testSecret, unsigned)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "admin", "x", 10)
	assert.Error(t, err)

	_, err = Parse("", "lo-que-sea")
	assert.Error(t, err)
}
