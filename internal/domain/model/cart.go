package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID uint       `gorm:"primaryKey" json:"cart_id"`
	UserID uint       `gorm:"not null;uniqueIndex" json:"user_id"` // 外鍵，關聯到 User
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	BaseModel
}

// Price 為加入購物車當下的商品單價，後續商品調價不影響購物車
type CartItem struct {
	CartItemID uint            `gorm:"primaryKey" json:"cart_item_id"`
	CartID     uint            `gorm:"not null;index" json:"cart_id"`
	ProductID  uint            `gorm:"not null;index" json:"product_id"`
	Product    *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	BaseModel
}

func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartSnapshot 結帳當下讀取的購物車快照，只存在於單次請求
type CartSnapshot struct {
	CartID     uint               `json:"cart_id"`
	UserID     uint               `json:"user_id"`
	Items      []CartSnapshotItem `json:"items"`
	CapturedAt time.Time          `json:"captured_at"`
}

type CartSnapshotItem struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

func (s *CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// Subtotal 快照內所有品項小計加總
func (s *CartSnapshot) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	return subtotal
}
