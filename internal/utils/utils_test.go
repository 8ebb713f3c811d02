package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_SendsJSONHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient().WithTimeout(time.Second).R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestHTTPClient_WithTimeout_NonPositiveIgnored(t *testing.T) {
	c := NewHTTPClient().WithTimeout(0)
	assert.Zero(t, c.GetClient().Timeout)

	c.WithTimeout(3 * time.Second)
	assert.Equal(t, 3*time.Second, c.GetClient().Timeout)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.Generate()
	b := g.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestInspectJWT_DecodesRegisteredClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		Issuer:    "compliance-api",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("whatever"))
	require.NoError(t, err)

	claims, err := InspectJWT(signed)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "compliance-api", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, exp.Equal(*claims.ExpiresAt))
}

func TestInspectJWT_OpaqueToken(t *testing.T) {
	_, err := InspectJWT("opaque-token")
	assert.ErrorIs(t, err, ErrNotJWT)
}

func TestInspectJWT_MalformedToken(t *testing.T) {
	_, err := InspectJWT("abc.not-base64!.sig")
	assert.ErrorIs(t, err, ErrMalformedJWT)
	assert.NotErrorIs(t, err, ErrNotJWT)
}
