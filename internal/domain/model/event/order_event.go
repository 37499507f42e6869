package event

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

// 結帳成功後發佈，下游(通知/報表)消費
type OrderPlacedEvent struct {
	BaseEvent
	OrderID     string            `json:"order_id"`
	UserID      uint              `json:"user_id"`
	OrderDate   time.Time         `json:"order_date"`
	Items       []model.OrderItem `json:"items"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	CouponCode  string            `json:"coupon_code,omitempty"`
}

func (e *OrderPlacedEvent) Type() EventType {
	return OrderPlacedEventName
}

type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID    string            `json:"order_id"`
	FromStatus model.OrderStatus `json:"from_status"`
	ToStatus   model.OrderStatus `json:"to_status"`
}

func (e *OrderStatusChangedEvent) Type() EventType {
	return OrderStatusChangedEventName
}

type PaymentStatusChangedEvent struct {
	BaseEvent
	OrderID    string              `json:"order_id"`
	FromStatus model.PaymentStatus `json:"from_status"`
	ToStatus   model.PaymentStatus `json:"to_status"`
}

func (e *PaymentStatusChangedEvent) Type() EventType {
	return PaymentStatusChangedName
}
