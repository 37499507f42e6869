package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/shopspring/decimal"
)

// CouponInvalidReason 驗證失敗原因，回傳給呼叫端顯示
type CouponInvalidReason string

const (
	CouponReasonNotFound      CouponInvalidReason = "not_found"
	CouponReasonInactive      CouponInvalidReason = "inactive"
	CouponReasonNotStarted    CouponInvalidReason = "not_started"
	CouponReasonExpired       CouponInvalidReason = "expired"
	CouponReasonUsageExceeded CouponInvalidReason = "usage_exceeded"
	CouponReasonBelowMinimum  CouponInvalidReason = "below_minimum"
)

// CouponInvalidError 優惠券不可用
// 驗證失敗會讓整個結帳失敗而不是默默忽略折扣
type CouponInvalidError struct {
	Code   string
	Reason CouponInvalidReason
}

func (e *CouponInvalidError) Error() string {
	return fmt.Sprintf("coupon %q invalid: %s", e.Code, e.Reason)
}

type ICouponService interface {
	// Validate 檢查優惠券是否可用於subtotal的訂單，不可用回傳*CouponInvalidError
	Validate(coupon *model.Coupon, subtotal decimal.Decimal, now time.Time) error
	// ComputeDiscount 計算折扣金額，保證落在 [0, subtotal]
	ComputeDiscount(coupon *model.Coupon, subtotal decimal.Decimal) decimal.Decimal
	// ValidateCode 依代碼取券並驗證
	ValidateCode(ctx context.Context, code string, subtotal decimal.Decimal, now time.Time) (*model.Coupon, error)

	CreateCoupon(ctx context.Context, coupon *model.Coupon) error
	GetCoupon(ctx context.Context, couponID uint) (*model.Coupon, error)
	GetAllCoupons(ctx context.Context) ([]model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) error
	DeleteCoupon(ctx context.Context, couponID uint) error
}

type CouponService struct {
	couponRepo db.ICouponRepository
}

func NewCouponService(couponRepo db.ICouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// 驗證順序: active -> 起始 -> 到期 -> 次數 -> 低消
func (s *CouponService) Validate(coupon *model.Coupon, subtotal decimal.Decimal, now time.Time) error {
	if !coupon.IsActive {
		return &CouponInvalidError{Code: coupon.Code, Reason: CouponReasonInactive}
	}
	if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
		return &CouponInvalidError{Code: coupon.Code, Reason: CouponReasonNotStarted}
	}
	if coupon.ExpiresAt != nil && now.After(*coupon.ExpiresAt) {
		return &CouponInvalidError{Code: coupon.Code, Reason: CouponReasonExpired}
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return &CouponInvalidError{Code: coupon.Code, Reason: CouponReasonUsageExceeded}
	}
	if coupon.MinimumAmount != nil && subtotal.LessThan(*coupon.MinimumAmount) {
		return &CouponInvalidError{Code: coupon.Code, Reason: CouponReasonBelowMinimum}
	}
	return nil
}

// percentage: subtotal * value / 100
// fixed_amount: min(value, subtotal)，折扣不得超過小計
func (s *CouponService) ComputeDiscount(coupon *model.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch coupon.Type {
	case model.CouponTypePercentage:
		discount = subtotal.Mul(coupon.Value).Div(oneHundred).Round(2)
	case model.CouponTypeFixedAmount:
		discount = coupon.Value
	default:
		return decimal.Zero
	}

	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

func (s *CouponService) ValidateCode(ctx context.Context, code string, subtotal decimal.Decimal, now time.Time) (*model.Coupon, error) {
	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if errors.Is(err, db.ErrCouponNotFound) {
		return nil, &CouponInvalidError{Code: code, Reason: CouponReasonNotFound}
	}
	if err != nil {
		return nil, err
	}

	if err := s.Validate(coupon, subtotal, now); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) CreateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return s.couponRepo.CreateCoupon(ctx, coupon)
}

func (s *CouponService) GetCoupon(ctx context.Context, couponID uint) (*model.Coupon, error) {
	return s.couponRepo.GetCouponByID(ctx, couponID)
}

func (s *CouponService) GetAllCoupons(ctx context.Context) ([]model.Coupon, error) {
	return s.couponRepo.GetAllCoupons(ctx)
}

func (s *CouponService) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return s.couponRepo.UpdateCoupon(ctx, coupon)
}

func (s *CouponService) DeleteCoupon(ctx context.Context, couponID uint) error {
	return s.couponRepo.DeleteCoupon(ctx, couponID)
}

var _ ICouponService = (*CouponService)(nil)
