package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // 待處理
	OrderStatusProcessing OrderStatus = "processing" // 處理中
	OrderStatusShipped    OrderStatus = "shipped"    // 已出貨
	OrderStatusDelivered  OrderStatus = "delivered"  // 已送達
	OrderStatusCancelled  OrderStatus = "cancelled"  // 已取消
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo 訂單狀態機: pending → processing → shipped → delivered
// cancelled 可從任何非終態進入
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	if next == OrderStatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// CanTransitionTo 付款狀態獨立轉移: pending → paid | failed, paid → refunded
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusPaid || next == PaymentStatusFailed
	case PaymentStatusPaid:
		return next == PaymentStatusRefunded
	default:
		return false
	}
}

// Address 訂單建立時的地址快照
type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// 訂單階段 OrderItems 不會變動，只有 status / payment_status 會變動
// 不變量: total_amount = subtotal + tax_amount + shipping_amount - discount_amount
type Order struct {
	OrderID         string          `gorm:"primaryKey;type:varchar(255)" json:"order_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"` // 外鍵，關聯到 User
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
	TaxAmount       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"tax_amount"`
	ShippingAmount  decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"shipping_amount"`
	DiscountAmount  decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"discount_amount"`
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	BillingAddress  Address         `gorm:"serializer:json" json:"billing_address"`
	ShippingAddress Address         `gorm:"serializer:json" json:"shipping_address"`
	PaymentMethod   string          `gorm:"not null;type:varchar(50)" json:"payment_method"`
	CouponCode      string          `gorm:"type:varchar(100)" json:"coupon_code,omitempty"`
	Status          OrderStatus     `gorm:"not null;type:varchar(20);default:pending" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"not null;type:varchar(20);default:pending" json:"payment_status"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	ShippedAt       *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	BaseModel
}

// 商品名稱/SKU/單價為下單當下快照，與商品後續編輯脫鉤
type OrderItem struct {
	OrderID     string          `gorm:"primaryKey;type:varchar(255)" json:"order_id"` // 外鍵，關聯到 Order
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`                 // 外鍵，關聯到 Product
	ProductName string          `gorm:"not null;type:varchar(255)" json:"product_name"`
	ProductSKU  string          `gorm:"not null;type:varchar(100);column:product_sku" json:"product_sku"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_price"`
	BaseModel
}
