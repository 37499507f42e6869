package db

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepoTestSuite struct {
	suite.Suite
	db        *gorm.DB
	orderRepo *OrderRepo
	userRepo  *UserRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.orderRepo = NewOrderRepo(dbDao)
	suite.userRepo = NewUserRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *OrderRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM users")
}

func (suite *OrderRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *OrderRepoTestSuite) createTestUser(email string) *model.User {
	user, err := suite.userRepo.CreateUser(context.Background(), &model.User{
		UserName:  "Test User",
		UserEmail: email,
		Role:      model.RoleCustomer,
	})
	require.NoError(suite.T(), err)
	return user
}

func (suite *OrderRepoTestSuite) buildTestOrder(userID uint) *model.Order {
	orderID := uuid.New().String()
	return &model.Order{
		OrderID:        orderID,
		UserID:         userID,
		Subtotal:       decimal.NewFromInt(100),
		TaxAmount:      decimal.NewFromInt(10),
		ShippingAmount: decimal.NewFromInt(10),
		DiscountAmount: decimal.Zero,
		TotalAmount:    decimal.NewFromInt(120),
		PaymentMethod:  "credit_card",
		Status:         model.OrderStatusPending,
		PaymentStatus:  model.PaymentStatusPending,
		OrderDate:      time.Now().UTC(),
		Items: []model.OrderItem{
			{
				OrderID:     orderID,
				ProductID:   1,
				ProductName: "Wireless Mouse",
				ProductSKU:  "WM-001",
				Quantity:    2,
				UnitPrice:   decimal.NewFromInt(50),
				TotalPrice:  decimal.NewFromInt(100),
			},
		},
	}
}

func (suite *OrderRepoTestSuite) TestCreateOrder_WithItems() {
	user := suite.createTestUser("test@example.com")
	order := suite.buildTestOrder(user.UserID)

	err := suite.orderRepo.CreateOrder(context.Background(), order)
	require.NoError(suite.T(), err)

	found, err := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), found.Items, 1)
	require.Equal(suite.T(), "Wireless Mouse", found.Items[0].ProductName)
	require.True(suite.T(), decimal.NewFromInt(120).Equal(found.TotalAmount))
}

func (suite *OrderRepoTestSuite) TestGetOrderByID_NotFound() {
	found, err := suite.orderRepo.GetOrderByID(context.Background(), "missing")

	require.ErrorIs(suite.T(), err, ErrOrderNotFound)
	require.Nil(suite.T(), found)
}

func (suite *OrderRepoTestSuite) TestGetOrdersByUserID() {
	user := suite.createTestUser("test@example.com")
	other := suite.createTestUser("other@example.com")

	suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(user.UserID))
	suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(user.UserID))
	suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(other.UserID))

	orders, err := suite.orderRepo.GetOrdersByUserID(context.Background(), user.UserID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 2)
}

func (suite *OrderRepoTestSuite) TestGetOrdersPaginated_StatusFilter() {
	user := suite.createTestUser("test@example.com")

	pending := suite.buildTestOrder(user.UserID)
	suite.orderRepo.CreateOrder(context.Background(), pending)

	shipped := suite.buildTestOrder(user.UserID)
	shipped.Status = model.OrderStatusShipped
	suite.orderRepo.CreateOrder(context.Background(), shipped)

	orders, total, err := suite.orderRepo.GetOrdersPaginated(context.Background(), OrderFilter{Status: "shipped"}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Len(suite.T(), orders, 1)
	require.Equal(suite.T(), model.OrderStatusShipped, orders[0].Status)
}

func (suite *OrderRepoTestSuite) TestGetOrdersPaginated_SearchByEmail() {
	user := suite.createTestUser("alice@example.com")
	other := suite.createTestUser("bob@example.com")

	suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(user.UserID))
	suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(other.UserID))

	orders, total, err := suite.orderRepo.GetOrdersPaginated(context.Background(), OrderFilter{Search: "alice"}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Len(suite.T(), orders, 1)
	require.Equal(suite.T(), user.UserID, orders[0].UserID)
}

func (suite *OrderRepoTestSuite) TestUpdateOrderStatusFields() {
	user := suite.createTestUser("test@example.com")
	order := suite.buildTestOrder(user.UserID)
	suite.orderRepo.CreateOrder(context.Background(), order)

	now := time.Now().UTC()
	order.Status = model.OrderStatusShipped
	order.PaymentStatus = model.PaymentStatusPaid
	order.ShippedAt = &now

	err := suite.orderRepo.UpdateOrderStatusFields(context.Background(), order)
	require.NoError(suite.T(), err)

	found, _ := suite.orderRepo.GetOrderByID(context.Background(), order.OrderID)
	require.Equal(suite.T(), model.OrderStatusShipped, found.Status)
	require.Equal(suite.T(), model.PaymentStatusPaid, found.PaymentStatus)
	require.NotNil(suite.T(), found.ShippedAt)
	require.Nil(suite.T(), found.DeliveredAt)
}

func (suite *OrderRepoTestSuite) TestSumPaidRevenue() {
	user := suite.createTestUser("test@example.com")

	paid := suite.buildTestOrder(user.UserID)
	paid.PaymentStatus = model.PaymentStatusPaid
	suite.orderRepo.CreateOrder(context.Background(), paid)

	unpaid := suite.buildTestOrder(user.UserID)
	suite.orderRepo.CreateOrder(context.Background(), unpaid)

	revenue, err := suite.orderRepo.SumPaidRevenue(context.Background())

	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.NewFromInt(120).Equal(revenue))
}

func (suite *OrderRepoTestSuite) TestSumPaidRevenue_NoOrders() {
	revenue, err := suite.orderRepo.SumPaidRevenue(context.Background())

	require.NoError(suite.T(), err)
	require.True(suite.T(), revenue.IsZero())
}

func (suite *OrderRepoTestSuite) TestCountOrdersByStatus() {
	user := suite.createTestUser("test@example.com")
	suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(user.UserID))
	suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(user.UserID))

	count, err := suite.orderRepo.CountOrdersByStatus(context.Background(), model.OrderStatusPending)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(2), count)
}

func (suite *OrderRepoTestSuite) TestGetRecentOrders() {
	user := suite.createTestUser("test@example.com")
	for i := 0; i < 7; i++ {
		suite.orderRepo.CreateOrder(context.Background(), suite.buildTestOrder(user.UserID))
	}

	orders, err := suite.orderRepo.GetRecentOrders(context.Background(), 5)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 5)
}

// 執行測試套件
func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}
