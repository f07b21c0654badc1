package middleware

import (
	"context"
	"net/http"
	"strings"

	"pet-care-companion/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si viene header X-Debug-User-ID => setea claims con ese user (modo dev).
// - Si no, intenta leer la sesión guardada en el proveedor de credenciales.
// - Si no hay claims, el request sigue igual; los handlers deciden si exigen auth.
func AuthContext(provider auth.CredentialProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
				ctx := context.WithValue(r.Context(), claimsKey, auth.Claims{UserID: uid})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if provider == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.CurrentClaims(r.Context(), provider)
			if err != nil {
				// sin sesión o blob roto: el handler decide 401
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

// UserID devuelve el usuario de la sesión; ok=false si el request no trae claims.
func UserID(r *http.Request) (string, bool) {
	claims, ok := GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}
