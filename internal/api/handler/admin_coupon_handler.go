package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AdminCouponHandler struct {
	couponService service.ICouponService
}

func NewAdminCouponHandler(couponService service.ICouponService) *AdminCouponHandler {
	if couponService == nil {
		panic("couponService cannot be nil")
	}
	return &AdminCouponHandler{
		couponService: couponService,
	}
}

func (h *AdminCouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponService.GetAllCoupons(r.Context())
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, coupons)
}

func (h *AdminCouponHandler) Show(w http.ResponseWriter, r *http.Request) {
	couponID := parseUintURLParam(r, "couponID")
	if couponID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid coupon id")
		return
	}

	coupon, err := h.couponService.GetCoupon(r.Context(), couponID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, coupon)
}

func (h *AdminCouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var couponDTO dto.CouponDTO
	if err := decodeJSON(r, &couponDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := couponDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	coupon := couponDTO.ToModel()
	if err := h.couponService.CreateCoupon(r.Context(), coupon); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	CreatedJSON(w, coupon)
}

// Update 已使用次數不可由外部修改，維持原值
func (h *AdminCouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	couponID := parseUintURLParam(r, "couponID")
	if couponID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid coupon id")
		return
	}

	var couponDTO dto.CouponDTO
	if err := decodeJSON(r, &couponDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := couponDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.couponService.GetCoupon(r.Context(), couponID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	coupon := couponDTO.ToModel()
	coupon.CouponID = couponID
	coupon.UsedCount = existing.UsedCount
	if err := h.couponService.UpdateCoupon(r.Context(), coupon); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, coupon)
}

func (h *AdminCouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	couponID := parseUintURLParam(r, "couponID")
	if couponID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid coupon id")
		return
	}

	if err := h.couponService.DeleteCoupon(r.Context(), couponID); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, nil)
}
