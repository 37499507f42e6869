package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart 購物車是空的，結帳前擋掉，不會有任何寫入
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrCheckoutFailed 交易中途失敗，所有寫入已rollback
	ErrCheckoutFailed = errors.New("checkout failed")
)

// CheckoutInput 結帳輸入，欄位在handler層已驗證過
type CheckoutInput struct {
	BillingAddress  model.Address
	ShippingAddress model.Address
	PaymentMethod   string
	CouponCode      string
}

type ICheckoutService interface {
	// ReadCartSnapshot 讀取結帳用的購物車快照
	ReadCartSnapshot(ctx context.Context, userID uint) (*model.CartSnapshot, error)
	// PlaceOrder 購物車轉訂單，單一交易
	PlaceOrder(ctx context.Context, userID uint, input CheckoutInput) (*model.Order, error)
}

type CheckoutService struct {
	store          db.UnifiedDB
	couponService  ICouponService
	eventProducer  producer.IOrderEventProducer
	taxRatePercent decimal.Decimal
	shippingFee    decimal.Decimal
}

func NewCheckoutService(
	store db.UnifiedDB,
	couponService ICouponService,
	eventProducer producer.IOrderEventProducer,
	taxRatePercent decimal.Decimal,
	shippingFee decimal.Decimal,
) *CheckoutService {
	if store == nil {
		panic("checkout service dependency store is nil")
	}
	if couponService == nil {
		panic("checkout service dependency couponService is nil")
	}
	return &CheckoutService{
		store:          store,
		couponService:  couponService,
		eventProducer:  eventProducer,
		taxRatePercent: taxRatePercent,
		shippingFee:    shippingFee,
	}
}

// 快照只讀一次，定價計算期間不會變動
// 單價取加入購物車當下的價格，名稱/SKU取商品當下資料
func (s *CheckoutService) ReadCartSnapshot(ctx context.Context, userID uint) (*model.CartSnapshot, error) {
	cart, err := s.store.GetCartWithItems(ctx, userID)
	if errors.Is(err, db.ErrCartNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	snapshot := &model.CartSnapshot{
		CartID:     cart.CartID,
		UserID:     cart.UserID,
		CapturedAt: time.Now().UTC(),
	}
	for _, item := range cart.Items {
		if item.Product == nil {
			return nil, fmt.Errorf("cart item %d has no product", item.CartItemID)
		}
		snapshot.Items = append(snapshot.Items, model.CartSnapshotItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			ProductSKU:  item.Product.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.Price,
			LineTotal:   item.LineTotal(),
		})
	}
	return snapshot, nil
}

/*
PlaceOrder 結帳流程:
 1. 讀購物車快照，空車直接失敗
 2. 有優惠券代碼就驗證，驗證失敗回傳CouponInvalidError給用戶
 3. 計算稅額/運費/折扣/總額
 4. 單一交易: 建訂單 -> 建品項 -> 優惠券條件遞增 -> 清空購物車
 5. commit後發佈OrderPlaced事件(best effort)

優惠券used_count在交易內遞增，結帳失敗不會燒掉使用次數
*/
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, input CheckoutInput) (*model.Order, error) {
	snapshot, err := s.ReadCartSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, ErrEmptyCart
	}

	subtotal := snapshot.Subtotal()

	var coupon *model.Coupon
	discount := decimal.Zero
	if input.CouponCode != "" {
		coupon, err = s.couponService.ValidateCode(ctx, input.CouponCode, subtotal, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		discount = s.couponService.ComputeDiscount(coupon, subtotal)
	}

	totals := ComputeTotals(subtotal, s.taxRatePercent, s.shippingFee, discount)

	order := &model.Order{
		OrderID:         uuid.New().String(),
		UserID:          userID,
		Subtotal:        totals.Subtotal,
		TaxAmount:       totals.Tax,
		ShippingAmount:  totals.Shipping,
		DiscountAmount:  totals.Discount,
		TotalAmount:     totals.Total,
		BillingAddress:  input.BillingAddress,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		CouponCode:      input.CouponCode,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		OrderDate:       time.Now().UTC(),
	}
	for _, item := range snapshot.Items {
		order.Items = append(order.Items, model.OrderItem{
			OrderID:     order.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.LineTotal,
		})
	}

	err = s.store.Transaction(ctx, func(tx *gorm.DB) error {
		// 訂單與品項一起寫入
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		if coupon != nil {
			if err := s.store.IncrementUsage(ctx, tx, coupon.CouponID); err != nil {
				return err
			}
		}

		// 清空購物車
		if err := tx.Unscoped().
			Where("cart_id = ?", snapshot.CartID).
			Delete(&model.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		// 驗證通過後到commit前被別的結帳用完
		if errors.Is(err, db.ErrCouponUsageExhausted) {
			return nil, &CouponInvalidError{Code: input.CouponCode, Reason: CouponReasonUsageExceeded}
		}
		log.Error().Err(err).Uint("user_id", userID).Msg("checkout transaction rolled back")
		return nil, ErrCheckoutFailed
	}

	// 事件發佈不在交易內，失敗只記log
	if s.eventProducer != nil {
		if err := s.eventProducer.ProduceOrderPlacedEvent(ctx, order); err != nil {
			log.Warn().Err(err).Str("order_id", order.OrderID).Msg("failed to produce order placed event")
		}
	}

	return order, nil
}

var _ ICheckoutService = (*CheckoutService)(nil)
