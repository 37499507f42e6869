package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/util"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	view, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, view)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var addDTO dto.AddCartItemDTO
	if err := decodeJSON(r, &addDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := addDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.cartService.AddItem(ctx, userID, addDTO.ProductID, addDTO.Quantity); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	view, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}
	SuccessJSON(w, view)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	itemID := parseUintURLParam(r, "itemID")
	if itemID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	var updateDTO dto.UpdateCartItemDTO
	if err := decodeJSON(r, &updateDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := updateDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.cartService.UpdateItemQuantity(ctx, userID, itemID, updateDTO.Quantity); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	view, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}
	SuccessJSON(w, view)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	itemID := parseUintURLParam(r, "itemID")
	if itemID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid cart item id")
		return
	}

	if err := h.cartService.RemoveItem(ctx, userID, itemID); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, nil)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.cartService.ClearCart(ctx, userID); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, nil)
}
