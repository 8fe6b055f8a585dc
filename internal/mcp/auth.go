package mcp

import (
	"fmt"
	"net/http"
	"strings"

	"bonddata/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// WithAuth wraps the HTTP transport with RS256 bearer-token verification. The
// token subject is attached to the request logger on success.
func WithAuth(next http.Handler, publicKeyPEM string) (http.Handler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || raw == "" {
			unauthorized(w)

			return
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(raw, claims,
			func(*jwt.Token) (any, error) { return key, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired())
		if err != nil {
			logger.Debug(r.Context(), "rejected transport token", zap.Error(err))
			unauthorized(w)

			return
		}

		ctx := logger.WithFields(r.Context(), zap.String("subject", claims.Subject))
		next.ServeHTTP(w, r.WithContext(ctx))
	}), nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
