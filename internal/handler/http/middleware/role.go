package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sitehub/sitehub-backend-go/internal/domain/user"
	"github.com/sitehub/sitehub-backend-go/internal/handler/http/response"
)

// RequirePermission checks the caller's role claim against the static
// role/permission table before letting the request through.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrPermissionRequired)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrPermissionRequired)
				return
			}

			if !user.HasPermission(user.Role(roleStr), permission) {
				response.HandleError(w, user.ErrPermissionRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
