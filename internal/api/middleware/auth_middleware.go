package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
)

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

// UserIdentityMiddleware 從X-User-ID header取得用戶身份
// 身份驗證由前置的認證中心處理，這裡信任gateway放進來的header
func UserIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || userID == 0 {
			writeUnauthorized(w, "invalid user identity")
			return
		}

		ctx := context.WithValue(r.Context(), constants.UserIDKey, uint(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUserMiddleware 需要登入的路由
func RequireUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(constants.UserIDKey) == nil {
			writeUnauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
