package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CouponTypePercentage  = "percentage"
	CouponTypeFixedAmount = "fixed_amount"
)

// UsedCount 只增不減，有設 UsageLimit 時不得超過
type Coupon struct {
	CouponID      uint             `gorm:"primaryKey" json:"coupon_id"`
	Code          string           `gorm:"not null;type:varchar(100);unique" json:"code"`
	Name          string           `gorm:"not null;type:varchar(255)" json:"name"`
	Description   string           `gorm:"type:text" json:"description"`
	Type          string           `gorm:"not null;type:varchar(20)" json:"type"` // percentage, fixed_amount
	Value         decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"value"`
	MinimumAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"minimum_amount,omitempty"`
	UsageLimit    *int             `json:"usage_limit,omitempty"`
	UsedCount     int              `gorm:"not null;default:0" json:"used_count"`
	IsActive      bool             `gorm:"not null;default:true" json:"is_active"`
	StartsAt      *time.Time       `json:"starts_at,omitempty"`
	ExpiresAt     *time.Time       `json:"expires_at,omitempty"`
	BaseModel
}
