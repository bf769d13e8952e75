// Package middleware provides HTTP middleware for authentication and
// role checks.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Identity is the authenticated caller extracted from a bearer token.
// Name feeds identity-to-member resolution for vote submissions.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Role   string
}

// TokenValidator validates a bearer token and returns the caller identity.
// An interface keeps the middleware decoupled from the JWT implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const identityKey ContextKey = "identity"

// Auth validates the Authorization header and stores the caller identity
// in the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Acesso negado. Token não fornecido.", http.StatusUnauthorized)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Acesso negado. Token não fornecido.", http.StatusUnauthorized)
				return
			}

			identity, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				http.Error(w, "Token inválido ou expirado.", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects callers whose identity does not carry the admin
// role. Must run inside Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := GetIdentity(r)
		if err != nil || identity.Role != "admin" {
			http.Error(w, "Acesso proibido. Requer privilégios de Administrador.", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetIdentity extracts the authenticated caller from the request context.
func GetIdentity(r *http.Request) (Identity, error) {
	identity, ok := r.Context().Value(identityKey).(Identity)
	if !ok {
		return Identity{}, fmt.Errorf("identity not found in request context")
	}
	return identity, nil
}
