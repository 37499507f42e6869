package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	// 基礎操作
	GetDB() *gorm.DB
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	InitMigrate() error

	IProductRepository
	ICartRepository
	IOrderRepository
	ICouponRepository
	IUserRepository
	IWishlistRepository
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*model.Product, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]model.Product, error)
	GetRelatedProducts(ctx context.Context, product *model.Product, limit int) ([]model.Product, error)
	GetProductsPaginated(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int64, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error
	HardDeleteProduct(ctx context.Context, productID uint) error
	CountProducts(ctx context.Context) (int64, error)
	GetActiveCategories(ctx context.Context) ([]model.Category, error)
	GetRootCategories(ctx context.Context, limit int) ([]model.Category, error)
	GetActiveBrands(ctx context.Context) ([]model.Brand, error)
}

// ICartRepository Cart 相關操作介面
type ICartRepository interface {
	GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error)
	GetCartWithItems(ctx context.Context, userID uint) (*model.Cart, error)
	GetCartItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error)
	GetCartItemByID(ctx context.Context, cartItemID uint) (*model.CartItem, error)
	CreateCartItem(ctx context.Context, item *model.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, cartItemID uint, quantity int) error
	DeleteCartItem(ctx context.Context, cartItemID uint) error
	ClearCart(ctx context.Context, cartID uint) error
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrdersPaginated(ctx context.Context, filter OrderFilter, page, pageSize int) ([]model.Order, int64, error)
	UpdateOrderStatusFields(ctx context.Context, order *model.Order) error
	HardDeleteOrder(ctx context.Context, id string) error
	CountOrders(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	SumPaidRevenue(ctx context.Context) (decimal.Decimal, error)
	GetRecentOrders(ctx context.Context, limit int) ([]model.Order, error)
}

// ICouponRepository Coupon 相關操作介面
type ICouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *model.Coupon) error
	GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error)
	GetCouponByID(ctx context.Context, couponID uint) (*model.Coupon, error)
	GetAllCoupons(ctx context.Context) ([]model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) error
	DeleteCoupon(ctx context.Context, couponID uint) error
	IncrementUsage(ctx context.Context, tx *gorm.DB, couponID uint) error
}

// IUserRepository User 相關操作介面
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
}

// IWishlistRepository Wishlist 相關操作介面
type IWishlistRepository interface {
	GetWishlistByUserID(ctx context.Context, userID uint) ([]model.Wishlist, error)
	Exists(ctx context.Context, userID, productID uint) (bool, error)
	CreateWishlistItem(ctx context.Context, item *model.Wishlist) error
	DeleteWishlistItem(ctx context.Context, userID, productID uint) error
}

// UnifiedDBImpl 統一資料庫實現
type UnifiedDBImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*ProductDBRepo
	*CartRepo
	*OrderRepo
	*CouponRepo
	*UserRepo
	*WishlistRepo
}

// NewUnifiedDB 創建新的統一資料庫實例
func NewUnifiedDB(db *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(db)
	return &UnifiedDBImpl{
		db:            db,
		dbDao:         dbDao,
		ProductDBRepo: NewProductDBRepo(dbDao),
		CartRepo:      NewCartRepo(dbDao),
		OrderRepo:     NewOrderRepo(dbDao),
		CouponRepo:    NewCouponRepo(dbDao),
		UserRepo:      NewUserRepo(dbDao),
		WishlistRepo:  NewWishlistRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

// GetDB 獲取資料庫連接
func (u *UnifiedDBImpl) GetDB() *gorm.DB {
	return u.db
}

// Transaction 以單一交易執行fn，fn回傳error則整體rollback
func (u *UnifiedDBImpl) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

var (
	_ UnifiedDB           = (*UnifiedDBImpl)(nil)
	_ IProductRepository  = (*UnifiedDBImpl)(nil)
	_ ICartRepository     = (*UnifiedDBImpl)(nil)
	_ IOrderRepository    = (*UnifiedDBImpl)(nil)
	_ ICouponRepository   = (*UnifiedDBImpl)(nil)
	_ IUserRepository     = (*UnifiedDBImpl)(nil)
	_ IWishlistRepository = (*UnifiedDBImpl)(nil)
)
