package middleware

import (
	"net/http"

	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/pkg/response"
)

// RequireRole checks the session identity against the allowed roles.
// Role is read from context (set by AuthMiddleware from JWT claims).
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if identity.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireManager is a convenience middleware for manager-only endpoints
func RequireManager(next http.Handler) http.Handler {
	return RequireRole(entity.RoleManager)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequireReception is a convenience middleware for front-desk endpoints
func RequireReception(next http.Handler) http.Handler {
	return RequireRole(entity.RoleReception)(next)
}

// RequireReceptionOrManager covers the patient and visit registries, which
// both of those roles work from
func RequireReceptionOrManager(next http.Handler) http.Handler {
	return RequireRole(entity.RoleReception, entity.RoleManager)(next)
}
