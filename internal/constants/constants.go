package constants

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	UserRoleKey  ContextKey = "user_role"
)

const (
	DefaultPageSize      = 12
	AdminPageSize        = 15
	MaxPageSize          = 100
	HomeFeaturedLimit    = 8
	HomeCategoryLimit    = 6
	RelatedProductsLimit = 4
	DashboardRecentLimit = 5
)
