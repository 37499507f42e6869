package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// brokenCouponStore 讓交易內訂單建立後的下一步固定失敗
type brokenCouponStore struct {
	db.UnifiedDB
}

func (s *brokenCouponStore) IncrementUsage(ctx context.Context, tx *gorm.DB, couponID uint) error {
	return errors.New("increment usage failed")
}

type CheckoutServiceTestSuite struct {
	suite.Suite
	db              *gorm.DB
	store           db.UnifiedDB
	checkoutService *CheckoutService
	couponService   *CouponService
}

// SetupSuite 在測試套件開始前執行
func (suite *CheckoutServiceTestSuite) SetupSuite() {
	conn, err := db.GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)

	store := db.NewUnifiedDB(conn)
	require.NoError(suite.T(), store.InitMigrate())

	couponService := NewCouponService(store)
	checkoutService := NewCheckoutService(
		store,
		couponService,
		nil, // 不測事件發佈
		decimal.NewFromInt(10),
		decimal.NewFromInt(10),
	)

	suite.db = conn
	suite.store = store
	suite.couponService = couponService
	suite.checkoutService = checkoutService
}

// SetupTest 在每個測試前執行
func (suite *CheckoutServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM carts")
	suite.db.Exec("DELETE FROM coupons")
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM users")
}

func (suite *CheckoutServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *CheckoutServiceTestSuite) createTestUser() *model.User {
	user, err := suite.store.CreateUser(context.Background(), &model.User{
		UserName:  "Test User",
		UserEmail: "test@example.com",
		Role:      model.RoleCustomer,
	})
	require.NoError(suite.T(), err)
	return user
}

// 建立一台有兩個品項的購物車: 50x2 + 25x4 = 200
func (suite *CheckoutServiceTestSuite) createTestCart(userID uint) {
	ctx := context.Background()

	mouse := &model.Product{
		Name:          "Wireless Mouse",
		Slug:          "wireless-mouse",
		SKU:           "WM-001",
		Price:         decimal.NewFromInt(50),
		StockQuantity: 10,
		IsActive:      true,
		Status:        model.ProductStatusActive,
	}
	require.NoError(suite.T(), suite.store.CreateProduct(ctx, mouse))

	cable := &model.Product{
		Name:          "USB Cable",
		Slug:          "usb-cable",
		SKU:           "UC-001",
		Price:         decimal.NewFromInt(25),
		StockQuantity: 10,
		IsActive:      true,
		Status:        model.ProductStatusActive,
	}
	require.NoError(suite.T(), suite.store.CreateProduct(ctx, cable))

	cart, err := suite.store.GetOrCreateCart(ctx, userID)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.store.CreateCartItem(ctx, &model.CartItem{
		CartID:    cart.CartID,
		ProductID: mouse.ProductID,
		Quantity:  2,
		Price:     mouse.Price,
	}))
	require.NoError(suite.T(), suite.store.CreateCartItem(ctx, &model.CartItem{
		CartID:    cart.CartID,
		ProductID: cable.ProductID,
		Quantity:  4,
		Price:     cable.Price,
	}))
}

func testCheckoutInput(couponCode string) CheckoutInput {
	addr := model.Address{
		Name:       "王小明",
		Line1:      "中正路100號",
		City:       "台北市",
		PostalCode: "100",
		Country:    "TW",
	}
	return CheckoutInput{
		BillingAddress:  addr,
		ShippingAddress: addr,
		PaymentMethod:   "credit_card",
		CouponCode:      couponCode,
	}
}

func (suite *CheckoutServiceTestSuite) TestReadCartSnapshot() {
	user := suite.createTestUser()
	suite.createTestCart(user.UserID)

	snapshot, err := suite.checkoutService.ReadCartSnapshot(context.Background(), user.UserID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), snapshot.Items, 2)
	require.True(suite.T(), decimal.NewFromInt(200).Equal(snapshot.Subtotal()))
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrder() {
	user := suite.createTestUser()
	suite.createTestCart(user.UserID)

	order, err := suite.checkoutService.PlaceOrder(context.Background(), user.UserID, testCheckoutInput(""))

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), model.OrderStatusPending, order.Status)
	require.Equal(suite.T(), model.PaymentStatusPending, order.PaymentStatus)
	require.Len(suite.T(), order.Items, 2)

	// subtotal 200, 稅 20, 運費 10 -> 230
	require.True(suite.T(), decimal.NewFromInt(200).Equal(order.Subtotal))
	require.True(suite.T(), decimal.NewFromInt(20).Equal(order.TaxAmount))
	require.True(suite.T(), decimal.NewFromInt(230).Equal(order.TotalAmount))

	// 金額不變量
	expected := order.Subtotal.Add(order.TaxAmount).Add(order.ShippingAmount).Sub(order.DiscountAmount)
	require.True(suite.T(), expected.Equal(order.TotalAmount))

	// 訂單已落庫，購物車已清空
	found, err := suite.store.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), found.Items, 2)

	cart, err := suite.store.GetCartWithItems(context.Background(), user.UserID)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), cart.Items)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrder_EmptyCart() {
	user := suite.createTestUser()
	_, err := suite.store.GetOrCreateCart(context.Background(), user.UserID)
	require.NoError(suite.T(), err)

	order, err := suite.checkoutService.PlaceOrder(context.Background(), user.UserID, testCheckoutInput(""))

	require.ErrorIs(suite.T(), err, ErrEmptyCart)
	require.Nil(suite.T(), order)

	// 沒有任何訂單寫入
	total, err := suite.store.CountOrders(context.Background())
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), total)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrder_WithCoupon() {
	user := suite.createTestUser()
	suite.createTestCart(user.UserID)

	coupon := &model.Coupon{
		Code:     "SAVE10",
		Name:     "10% off",
		Type:     model.CouponTypePercentage,
		Value:    decimal.NewFromInt(10),
		IsActive: true,
	}
	require.NoError(suite.T(), suite.store.CreateCoupon(context.Background(), coupon))

	order, err := suite.checkoutService.PlaceOrder(context.Background(), user.UserID, testCheckoutInput("SAVE10"))

	require.NoError(suite.T(), err)
	// subtotal 200, 折扣 20, 稅 20, 運費 10 -> 210
	require.True(suite.T(), decimal.NewFromInt(20).Equal(order.DiscountAmount))
	require.True(suite.T(), decimal.NewFromInt(210).Equal(order.TotalAmount))
	require.Equal(suite.T(), "SAVE10", order.CouponCode)

	// used_count只遞增一次
	found, err := suite.store.GetCouponByCode(context.Background(), "SAVE10")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, found.UsedCount)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrder_InvalidCoupon() {
	user := suite.createTestUser()
	suite.createTestCart(user.UserID)

	coupon := &model.Coupon{
		Code:     "DISABLED",
		Name:     "disabled",
		Type:     model.CouponTypePercentage,
		Value:    decimal.NewFromInt(10),
		IsActive: false,
	}
	require.NoError(suite.T(), suite.store.CreateCoupon(context.Background(), coupon))

	order, err := suite.checkoutService.PlaceOrder(context.Background(), user.UserID, testCheckoutInput("DISABLED"))

	// 優惠券不可用時整個結帳失敗，不會默默忽略折扣
	var couponErr *CouponInvalidError
	require.ErrorAs(suite.T(), err, &couponErr)
	require.Equal(suite.T(), CouponReasonInactive, couponErr.Reason)
	require.Nil(suite.T(), order)

	// 購物車保持原樣
	cart, err := suite.store.GetCartWithItems(context.Background(), user.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Items, 2)

	total, _ := suite.store.CountOrders(context.Background())
	require.Zero(suite.T(), total)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrder_CouponUsageExhausted() {
	user := suite.createTestUser()
	suite.createTestCart(user.UserID)

	limit := 1
	coupon := &model.Coupon{
		Code:       "ONCE",
		Name:       "single use",
		Type:       model.CouponTypeFixedAmount,
		Value:      decimal.NewFromInt(5),
		UsageLimit: &limit,
		UsedCount:  1,
		IsActive:   true,
	}
	require.NoError(suite.T(), suite.store.CreateCoupon(context.Background(), coupon))

	order, err := suite.checkoutService.PlaceOrder(context.Background(), user.UserID, testCheckoutInput("ONCE"))

	var couponErr *CouponInvalidError
	require.ErrorAs(suite.T(), err, &couponErr)
	require.Equal(suite.T(), CouponReasonUsageExceeded, couponErr.Reason)
	require.Nil(suite.T(), order)

	// 沒有寫入，購物車原封不動
	cart, _ := suite.store.GetCartWithItems(context.Background(), user.UserID)
	require.Len(suite.T(), cart.Items, 2)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrder_MidTransactionFailureRollsBack() {
	user := suite.createTestUser()
	suite.createTestCart(user.UserID)
	ctx := context.Background()

	coupon := &model.Coupon{
		Code:     "SAVE10",
		Name:     "10% off",
		Type:     model.CouponTypePercentage,
		Value:    decimal.NewFromInt(10),
		IsActive: true,
	}
	require.NoError(suite.T(), suite.store.CreateCoupon(ctx, coupon))

	// 訂單已在交易內寫入後，下一步失敗，整筆交易rollback
	broken := &brokenCouponStore{UnifiedDB: suite.store}
	checkoutService := NewCheckoutService(
		broken,
		suite.couponService,
		nil,
		decimal.NewFromInt(10),
		decimal.NewFromInt(10),
	)

	order, err := checkoutService.PlaceOrder(ctx, user.UserID, testCheckoutInput("SAVE10"))

	require.ErrorIs(suite.T(), err, ErrCheckoutFailed)
	require.Nil(suite.T(), order)

	// 訂單與品項都沒留下
	total, err := suite.store.CountOrders(ctx)
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), total)

	var itemCount int64
	require.NoError(suite.T(), suite.db.Model(&model.OrderItem{}).Count(&itemCount).Error)
	require.Zero(suite.T(), itemCount)

	// 購物車保持原樣
	cart, err := suite.store.GetCartWithItems(ctx, user.UserID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), cart.Items, 2)

	// 使用次數沒被燒掉
	found, err := suite.store.GetCouponByCode(ctx, "SAVE10")
	require.NoError(suite.T(), err)
	require.Zero(suite.T(), found.UsedCount)
}

func (suite *CheckoutServiceTestSuite) TestPlaceOrder_BelowMinimum() {
	user := suite.createTestUser()
	suite.createTestCart(user.UserID)

	min := decimal.NewFromInt(500)
	coupon := &model.Coupon{
		Code:          "BIGSPENDER",
		Name:          "big spender",
		Type:          model.CouponTypePercentage,
		Value:         decimal.NewFromInt(10),
		MinimumAmount: &min,
		IsActive:      true,
	}
	require.NoError(suite.T(), suite.store.CreateCoupon(context.Background(), coupon))

	_, err := suite.checkoutService.PlaceOrder(context.Background(), user.UserID, testCheckoutInput("BIGSPENDER"))

	var couponErr *CouponInvalidError
	require.ErrorAs(suite.T(), err, &couponErr)
	require.Equal(suite.T(), CouponReasonBelowMinimum, couponErr.Reason)
}

// 執行測試套件
func TestCheckoutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}
