package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/bez-dna/bzd-messages/internal/config"
	api "github.com/bez-dna/bzd-messages/internal/generated"
)

const (
	headerAuthorization = "Authorization"
	headerUserUUID      = "X-User-Uuid"
	bearerPrefix        = "Bearer "
)

type TokenVerifier interface {
	Enabled() bool
	Subject(token string) (string, error)
}

// AuthInterceptorHTTP resolves the caller from a bearer token. The user header is trusted only
// while token verification is off. Requests with neither stay anonymous.
func AuthInterceptorHTTP(next http.Handler, verifier TokenVerifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := ""

		if auth := r.Header.Get(headerAuthorization); strings.HasPrefix(auth, bearerPrefix) {
			subject, err := verifier.Subject(strings.TrimPrefix(auth, bearerPrefix))
			if err != nil {
				writeAuthError(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}
			userID = subject
		} else if !verifier.Enabled() {
			userID = r.Header.Get(headerUserUUID)
		}

		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		if _, err := uuid.Parse(userID); err != nil {
			writeAuthError(w, "invalid user uuid", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), config.KeyUUID, userID)))
	})
}

func writeAuthError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
