package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

// Response 統一回應格式
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(Response{Data: data})
}

func CreatedJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(Response{Data: data})
}

func ErrorJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// decodeJSON 反序列化request body
// 未知欄位直接拒絕，body只接受白名單內的欄位
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// serviceErrorJSON 將service層錯誤對應到http狀態碼
func serviceErrorJSON(w http.ResponseWriter, err error) {
	var couponErr *service.CouponInvalidError
	if errors.As(err, &couponErr) {
		ErrorJSON(w, http.StatusUnprocessableEntity, couponErr.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotExist),
		errors.Is(err, service.ErrCartItemNotExist),
		errors.Is(err, db.ErrCouponNotFound),
		errors.Is(err, db.ErrUserNotFound):
		ErrorJSON(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidQuantity):
		ErrorJSON(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrNotCartOwner):
		ErrorJSON(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrSKUAlreadyExists),
		errors.Is(err, service.ErrAlreadyInWishlist),
		errors.Is(err, service.ErrIllegalTransition):
		ErrorJSON(w, http.StatusConflict, err.Error())
	default:
		ErrorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}
