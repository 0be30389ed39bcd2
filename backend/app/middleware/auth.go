package middleware

import (
	"context"
	"net/http"
	"strings"

	"stocklist/backend/app/apperr"
	jwtutil "stocklist/backend/app/jwt"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct {
	Signer *jwtutil.Signer
	Dev    bool
}

// RequireAuth distinguishes a missing token (401) from a bad one (403).
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			apperr.Write(w, apperr.New(apperr.Unauthenticated, "Access denied. No token provided."), a.Dev)
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.Parse(token)
		if err != nil {
			apperr.Write(w, apperr.New(apperr.Forbidden, "Invalid token."), a.Dev)
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())
		if claims == nil || claims.Role() != jwtutil.RoleAdmin {
			apperr.Write(w, apperr.New(apperr.Forbidden, "Access denied. Admin only."), a.Dev)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
