package mcp

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func testKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	return key, string(publicPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "tester",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func authedHandler(t *testing.T, publicPEM string) (http.Handler, *bool) {
	t.Helper()

	called := false
	handler, err := WithAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), publicPEM)
	require.NoError(t, err)

	return handler, &called
}

func TestWithAuth_ValidToken(t *testing.T) {
	key, publicPEM := testKeyPair(t)
	handler, called := authedHandler(t, publicPEM)

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, time.Now().Add(time.Hour)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *called)
}

func TestWithAuth_Rejections(t *testing.T) {
	key, publicPEM := testKeyPair(t)
	otherKey, _ := testKeyPair(t)

	cases := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"malformed token", "not-a-jwt"},
		{"expired token", signToken(t, key, time.Now().Add(-time.Hour))},
		{"wrong key", signToken(t, otherKey, time.Now().Add(time.Hour))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, called := authedHandler(t, publicPEM)

			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.False(t, *called)
			require.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
		})
	}
}

func TestWithAuth_InvalidPublicKey(t *testing.T) {
	_, err := WithAuth(http.NewServeMux(), "not a pem key")
	require.Error(t, err)
}
