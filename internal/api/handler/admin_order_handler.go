package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type AdminOrderHandler struct {
	orderService service.IOrderService
}

func NewAdminOrderHandler(orderService service.IOrderService) *AdminOrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &AdminOrderHandler{
		orderService: orderService,
	}
}

// List 後台訂單列表，可依狀態篩選、依訂單編號/客戶名稱/信箱搜尋
func (h *AdminOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := db.OrderFilter{
		Status: q.Get("status"),
		Search: q.Get("search"),
	}
	page := parsePage(r)
	pageSize := parsePageSize(r, constants.AdminPageSize)

	orders, total, err := h.orderService.GetOrdersPaginated(ctx, filter, page, pageSize)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, map[string]any{
		"orders":    orders,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *AdminOrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, order)
}

// UpdateStatus 更新訂單/付款狀態，不合法的轉移會被拒絕
func (h *AdminOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var statusDTO dto.UpdateOrderStatusDTO
	if err := decodeJSON(r, &statusDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := statusDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orderService.UpdateOrderStatus(
		r.Context(),
		orderID,
		model.OrderStatus(statusDTO.Status),
		model.PaymentStatus(statusDTO.PaymentStatus),
	)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, order)
}
