package middlewares

import (
	"net/http"
	"strings"

	"github.com/villastay/villa-api/internal/logger"
	"github.com/villastay/villa-api/internal/models"
)

// RequireRoles returns a middleware that only lets through requests whose
// verified role claim is one of allowedRoles. It must run after
// AuthMiddleware; a request without claims is rejected with 401, a request
// with the wrong role with 403. Role comparison is case-insensitive.
func RequireRoles(allowedRoles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				writeEnvelope(w, http.StatusUnauthorized, models.Fail(http.StatusUnauthorized, "Unauthorized"))
				return
			}

			role := strings.ToLower(strings.TrimSpace(claims.Role))
			if _, ok := allowed[role]; !ok {
				logger.Log.Warnw("role not allowed", "role", claims.Role, "uri", r.RequestURI)
				writeEnvelope(w, http.StatusForbidden, models.Fail(http.StatusForbidden, "Forbidden"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
