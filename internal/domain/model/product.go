package model

import (
	"github.com/shopspring/decimal"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

type Product struct {
	ProductID        uint             `gorm:"primaryKey" json:"product_id"`
	Name             string           `gorm:"not null;type:varchar(255)" json:"name"`
	Slug             string           `gorm:"not null;type:varchar(255);unique" json:"slug"`
	SKU              string           `gorm:"not null;type:varchar(100);unique;column:sku" json:"sku"`
	Description      string           `gorm:"type:text" json:"description"`
	ShortDescription string           `gorm:"type:text" json:"short_description"`
	Price            decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"price"`
	ComparePrice     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"compare_price,omitempty"`
	StockQuantity    int              `gorm:"not null;default:0" json:"stock_quantity"`
	CategoryID       *uint            `gorm:"index" json:"category_id,omitempty"`
	Category         *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BrandID          *uint            `gorm:"index" json:"brand_id,omitempty"`
	Brand            *Brand           `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	IsFeatured       bool             `gorm:"not null;default:false;index" json:"is_featured"`
	IsActive         bool             `gorm:"not null;default:true" json:"is_active"`
	Status           string           `gorm:"not null;type:varchar(20);default:active" json:"status"` // active, inactive, draft
	BaseModel                         // CreatedAt, UpdatedAt, DeletedAt
}

// 前台可見: is_active 且 status = active
func (p *Product) IsVisible() bool {
	return p.IsActive && p.Status == ProductStatusActive
}
