package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrCouponNotFound 優惠券不存在
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponUsageExhausted 使用次數已滿，條件更新沒有命中任何列
	ErrCouponUsageExhausted = errors.New("coupon usage exhausted")
)

type CouponRepo struct {
	db *DbDao
}

func NewCouponRepo(db *DbDao) *CouponRepo {
	return &CouponRepo{db: db}
}

func (s *CouponRepo) CreateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return s.db.WithContext(ctx).Create(coupon).Error
}

func (s *CouponRepo) GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponRepo) GetCouponByID(ctx context.Context, couponID uint) (*model.Coupon, error) {
	var coupon model.Coupon
	err := s.db.WithContext(ctx).First(&coupon, couponID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponRepo) GetAllCoupons(ctx context.Context) ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := s.db.WithContext(ctx).Find(&coupons).Error
	return coupons, err
}

func (s *CouponRepo) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return s.db.WithContext(ctx).Save(coupon).Error
}

func (s *CouponRepo) DeleteCoupon(ctx context.Context, couponID uint) error {
	return s.db.WithContext(ctx).Delete(&model.Coupon{}, couponID).Error
}

// IncrementUsage 條件更新遞增used_count，同一交易內呼叫
// 兩個結帳同時用到快用完的券時，靠 used_count < usage_limit 擋下超用
func (s *CouponRepo) IncrementUsage(ctx context.Context, tx *gorm.DB, couponID uint) error {
	result := tx.WithContext(ctx).Model(&model.Coupon{}).
		Where("coupon_id = ?", couponID).
		Where("usage_limit IS NULL OR used_count < usage_limit").
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponUsageExhausted
	}
	return nil
}
