package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrOrderNotFound 訂單不存在
	ErrOrderNotFound = errors.New("order not found")
)

// OrderFilter 後台訂單查詢條件
type OrderFilter struct {
	Status string
	Search string // 比對訂單編號或用戶名稱/信箱
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 創建訂單 (含訂單品項)
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Read - 根據ID查詢訂單
func (s *OrderRepo) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		First(&order, "order_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// 後台分頁查詢，最新優先
func (s *OrderRepo) GetOrdersPaginated(ctx context.Context, filter OrderFilter, page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	offset := (page - 1) * pageSize
	query := s.db.WithContext(ctx).Model(&model.Order{})

	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN users ON users.user_id = orders.user_id").
			Where("orders.order_id ILIKE ? OR users.user_name ILIKE ? OR users.user_email ILIKE ?",
				pattern, pattern, pattern)
	}

	// 計算總數
	query.Count(&total)

	// 分頁查詢
	err := query.Preload("Items").
		Order("orders.order_date DESC").
		Offset(offset).Limit(pageSize).
		Find(&orders).Error

	return orders, total, err
}

// Update - 儲存狀態轉移後的訂單
func (s *OrderRepo) UpdateOrderStatusFields(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", order.OrderID).
		Updates(map[string]interface{}{
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"shipped_at":     order.ShippedAt,
			"delivered_at":   order.DeliveredAt,
		}).Error
}

// Delete - 硬刪除訂單
func (s *OrderRepo) HardDeleteOrder(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Unscoped().Where("order_id = ?", id).Delete(&model.Order{}).Error
}

func (s *OrderRepo) CountOrders(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error
	return total, err
}

func (s *OrderRepo) CountOrdersByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ?", status).Count(&total).Error
	return total, err
}

// 已付款訂單營收加總
func (s *OrderRepo) SumPaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("payment_status = ?", model.PaymentStatusPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal, nil
}

// Read - 最近訂單，後台dashboard用
func (s *OrderRepo) GetRecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
