package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/util"
)

func writeForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "admin access required",
	})
}

// AdminMiddleware 後台路由的權限檢查，角色以DB內的資料為準
func AdminMiddleware(userRepo db.IUserRepository) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := util.GetUserIDFromContext(r.Context())
			if !ok {
				writeUnauthorized(w, "authentication required")
				return
			}

			user, err := userRepo.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, db.ErrUserNotFound) {
					writeUnauthorized(w, "authentication required")
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "internal server error",
				})
				return
			}

			if !user.IsAdmin() {
				writeForbidden(w)
				return
			}

			ctx := context.WithValue(r.Context(), constants.UserRoleKey, user.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
