package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AdminHandler struct {
	orderService service.IOrderService
}

func NewAdminHandler(orderService service.IOrderService) *AdminHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &AdminHandler{
		orderService: orderService,
	}
}

// Dashboard 後台儀表板統計
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orderService.GetDashboardStats(r.Context())
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, stats)
}
