package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/starsbot/pkg/utils"
)

type ContextKey string

const AdminIDKey ContextKey = "adminID"

type Admins interface {
	IsAdmin(userID int64) bool
}

// AuthMiddleware lets through requests carrying a valid bearer token issued
// to someone who is still a bot admin.
func AuthMiddleware(jwtService JWTServiceInterface, admins Admins) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil || !admins.IsAdmin(claims.AdminID) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AdminIDKey).(int64)
	return id, ok
}
