package util

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
)

func GetRequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return "unknown"
}

func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	if v := ctx.Value(constants.UserIDKey); v != nil {
		if id, ok := v.(uint); ok {
			return id, true
		}
	}
	return 0, false
}

func GetUserRoleFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.UserRoleKey); v != nil {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
