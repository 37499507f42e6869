package handler

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/util"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type CheckoutHandler struct {
	checkoutService service.ICheckoutService
	couponService   service.ICouponService
	orderService    service.IOrderService
	taxRatePercent  decimal.Decimal
	shippingFee     decimal.Decimal
}

func NewCheckoutHandler(
	checkoutService service.ICheckoutService,
	couponService service.ICouponService,
	orderService service.IOrderService,
	taxRatePercent decimal.Decimal,
	shippingFee decimal.Decimal,
) *CheckoutHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	if couponService == nil {
		panic("couponService cannot be nil")
	}
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &CheckoutHandler{
		checkoutService: checkoutService,
		couponService:   couponService,
		orderService:    orderService,
		taxRatePercent:  taxRatePercent,
		shippingFee:     shippingFee,
	}
}

// Preview 結帳頁資料: 購物車快照與金額試算
// coupon_code可選，給了就驗證並把折扣算進試算
func (h *CheckoutHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	snapshot, err := h.checkoutService.ReadCartSnapshot(ctx, userID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}
	if snapshot.IsEmpty() {
		serviceErrorJSON(w, service.ErrEmptyCart)
		return
	}

	subtotal := snapshot.Subtotal()
	discount := decimal.Zero
	if code := r.URL.Query().Get("coupon_code"); code != "" {
		coupon, err := h.couponService.ValidateCode(ctx, code, subtotal, time.Now().UTC())
		if err != nil {
			serviceErrorJSON(w, err)
			return
		}
		discount = h.couponService.ComputeDiscount(coupon, subtotal)
	}

	totals := service.ComputeTotals(subtotal, h.taxRatePercent, h.shippingFee, discount)

	SuccessJSON(w, map[string]any{
		"cart":   snapshot,
		"totals": totals,
	})
}

// Process 送出結帳
func (h *CheckoutHandler) Process(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var checkoutDTO dto.CheckoutDTO
	if err := decodeJSON(r, &checkoutDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkoutDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.checkoutService.PlaceOrder(ctx, userID, service.CheckoutInput{
		BillingAddress:  checkoutDTO.BillingAddress.ToModel(),
		ShippingAddress: checkoutDTO.ShippingAddress.ToModel(),
		PaymentMethod:   checkoutDTO.PaymentMethod,
		CouponCode:      checkoutDTO.CouponCode,
	})
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	CreatedJSON(w, order)
}

// MyOrders 用戶自己的訂單列表
func (h *CheckoutHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.orderService.GetOrdersByUserID(ctx, userID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, orders)
}

// ShowOrder 訂單詳情，只能看自己的訂單
func (h *CheckoutHandler) ShowOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orderID := chi.URLParam(r, "orderID")
	order, err := h.orderService.GetOrder(ctx, orderID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}
	// 不暴露他人訂單的存在
	if order.UserID != userID {
		serviceErrorJSON(w, service.ErrOrderNotExist)
		return
	}

	SuccessJSON(w, order)
}
