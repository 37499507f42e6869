package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrOrderNotExist 訂單不存在
	ErrOrderNotExist = errors.New("order is not exist")
	// ErrIllegalTransition 狀態機不允許的轉移
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// DashboardStats 後台儀表板統計
type DashboardStats struct {
	TotalProducts  int64           `json:"total_products"`
	TotalOrders    int64           `json:"total_orders"`
	TotalCustomers int64           `json:"total_customers"`
	PendingOrders  int64           `json:"pending_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	RecentOrders   []model.Order   `json:"recent_orders"`
}

type IOrderService interface {
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrdersPaginated(ctx context.Context, filter db.OrderFilter, page, pageSize int) ([]model.Order, int64, error)
	// UpdateOrderStatus 後台狀態更新，空字串表示該狀態不變
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, paymentStatus model.PaymentStatus) (*model.Order, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type OrderService struct {
	store         db.UnifiedDB
	eventProducer producer.IOrderEventProducer
}

func NewOrderService(store db.UnifiedDB, eventProducer producer.IOrderEventProducer) *OrderService {
	if store == nil {
		panic("order service dependency store is nil")
	}
	return &OrderService{store: store, eventProducer: eventProducer}
}

func (o *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := o.store.GetOrderByID(ctx, orderID)
	if errors.Is(err, db.ErrOrderNotFound) {
		return nil, ErrOrderNotExist
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (o *OrderService) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	return o.store.GetOrdersByUserID(ctx, userID)
}

func (o *OrderService) GetOrdersPaginated(ctx context.Context, filter db.OrderFilter, page, pageSize int) ([]model.Order, int64, error) {
	return o.store.GetOrdersPaginated(ctx, filter, page, pageSize)
}

/*
UpdateOrderStatus 訂單/付款狀態各自走自己的狀態機
轉到shipped/delivered時設置時間戳，只設一次:
重複轉到同狀態不會覆蓋第一次的時間戳
*/
func (o *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, paymentStatus model.PaymentStatus) (*model.Order, error) {
	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	fromStatus := order.Status
	fromPayment := order.PaymentStatus

	if status != "" {
		if !order.Status.CanTransitionTo(status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, status)
		}
		order.Status = status

		now := time.Now().UTC()
		if status == model.OrderStatusShipped && order.ShippedAt == nil {
			order.ShippedAt = &now
		}
		if status == model.OrderStatusDelivered && order.DeliveredAt == nil {
			order.DeliveredAt = &now
		}
	}

	if paymentStatus != "" {
		if !order.PaymentStatus.CanTransitionTo(paymentStatus) {
			return nil, fmt.Errorf("%w: payment %s -> %s", ErrIllegalTransition, order.PaymentStatus, paymentStatus)
		}
		order.PaymentStatus = paymentStatus
	}

	if err := o.store.UpdateOrderStatusFields(ctx, order); err != nil {
		return nil, err
	}

	if o.eventProducer != nil {
		if order.Status != fromStatus {
			if err := o.eventProducer.ProduceOrderStatusChangedEvent(ctx, orderID, fromStatus, order.Status); err != nil {
				log.Warn().Err(err).Str("order_id", orderID).Msg("failed to produce status changed event")
			}
		}
		if order.PaymentStatus != fromPayment {
			if err := o.eventProducer.ProducePaymentStatusChangedEvent(ctx, orderID, fromPayment, order.PaymentStatus); err != nil {
				log.Warn().Err(err).Str("order_id", orderID).Msg("failed to produce payment changed event")
			}
		}
	}

	return o.GetOrder(ctx, orderID)
}

// 統計查詢彼此獨立，併發抓
func (o *OrderService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := o.store.CountProducts(gctx)
		stats.TotalProducts = total
		return err
	})
	g.Go(func() error {
		total, err := o.store.CountOrders(gctx)
		stats.TotalOrders = total
		return err
	})
	g.Go(func() error {
		total, err := o.store.CountUsersByRole(gctx, model.RoleCustomer)
		stats.TotalCustomers = total
		return err
	})
	g.Go(func() error {
		total, err := o.store.CountOrdersByStatus(gctx, model.OrderStatusPending)
		stats.PendingOrders = total
		return err
	})
	g.Go(func() error {
		revenue, err := o.store.SumPaidRevenue(gctx)
		stats.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		orders, err := o.store.GetRecentOrders(gctx, 5)
		stats.RecentOrders = orders
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

var _ IOrderService = (*OrderService)(nil)
