package dto

import (
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

type CouponDTO struct {
	Code          string     `json:"code"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	Value         string     `json:"value"`
	MinimumAmount string     `json:"minimum_amount"`
	UsageLimit    *int       `json:"usage_limit"`
	IsActive      bool       `json:"is_active"`
	StartsAt      *time.Time `json:"starts_at"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (d *CouponDTO) Validate() error {
	if d.Code == "" {
		return errors.New("code is required")
	}
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.Type != model.CouponTypePercentage && d.Type != model.CouponTypeFixedAmount {
		return errors.New("type must be percentage or fixed_amount")
	}
	value, err := decimal.NewFromString(d.Value)
	if err != nil || value.IsNegative() {
		return errors.New("value must be a valid non-negative decimal")
	}
	if d.Type == model.CouponTypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("percentage value must not exceed 100")
	}
	if d.MinimumAmount != "" {
		min, err := decimal.NewFromString(d.MinimumAmount)
		if err != nil || min.IsNegative() {
			return errors.New("minimum_amount must be a valid non-negative decimal")
		}
	}
	if d.UsageLimit != nil && *d.UsageLimit < 1 {
		return errors.New("usage_limit must be at least 1")
	}
	if d.StartsAt != nil && d.ExpiresAt != nil && d.ExpiresAt.Before(*d.StartsAt) {
		return errors.New("expires_at must be after starts_at")
	}
	return nil
}

func (d *CouponDTO) ToModel() *model.Coupon {
	value, _ := decimal.NewFromString(d.Value)
	coupon := &model.Coupon{
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Type:        d.Type,
		Value:       value,
		UsageLimit:  d.UsageLimit,
		IsActive:    d.IsActive,
		StartsAt:    d.StartsAt,
		ExpiresAt:   d.ExpiresAt,
	}
	if d.MinimumAmount != "" {
		min, _ := decimal.NewFromString(d.MinimumAmount)
		coupon.MinimumAmount = &min
	}
	return coupon
}
