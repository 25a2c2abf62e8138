package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Auth is the caller's authentication state as derived from the bearer token.
// Personalized endpoints read it from the request context.
type Auth struct {
	Authenticated bool
	UID           string
}

type Middleware struct {
	secret []byte
}

func NewMiddleware(jwtSecret string) *Middleware {
	return &Middleware{secret: []byte(jwtSecret)}
}

// context key
type contextKey string

const AuthKey contextKey = "auth"

// RequireAuth rejects the request with 401 unless a valid bearer token is
// present. The verified subject is stored in the context as Auth.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := m.verify(r)
		if err != nil {
			http.Error(w, "invalid or missing bearer token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), AuthKey, Auth{Authenticated: true, UID: uid})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth verifies the bearer token when one is present but never
// rejects: a missing or invalid token degrades to the anonymous state.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := Auth{}
		if uid, err := m.verify(r); err == nil {
			auth = Auth{Authenticated: true, UID: uid}
		}
		ctx := context.WithValue(r.Context(), AuthKey, auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) verify(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing Authorization header")
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid Authorization header")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(parts[1], claims,
		func(t *jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// AuthFromContext extracts the caller's auth state; the zero value means
// anonymous.
func AuthFromContext(ctx context.Context) Auth {
	auth, _ := ctx.Value(AuthKey).(Auth)
	return auth
}

// UID extracts the authenticated caller's uid, empty when anonymous.
func UID(ctx context.Context) string {
	return AuthFromContext(ctx).UID
}
