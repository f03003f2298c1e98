package middleware

import (
	"net/http"

	"petclinic-api/internal/domain/entity"
	"petclinic-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from JWT
// claims).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
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

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor)(next)
}

// RequireCustomer is a convenience middleware for customer-only endpoints
func RequireCustomer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDCustomer)(next)
}

// RequireStaff allows the back-office roles that run the front desk
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff)(next)
}

// RequireClinic allows any clinic employee role
func RequireClinic(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff, entity.RoleIDDoctor)(next)
}
