package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/util"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type WishlistHandler struct {
	wishlistService service.IWishlistService
}

func NewWishlistHandler(wishlistService service.IWishlistService) *WishlistHandler {
	if wishlistService == nil {
		panic("wishlistService cannot be nil")
	}
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, err := h.wishlistService.GetWishlist(ctx, userID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, items)
}

func (h *WishlistHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var addDTO dto.AddWishlistItemDTO
	if err := decodeJSON(r, &addDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := addDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.wishlistService.AddProduct(ctx, userID, addDTO.ProductID); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	CreatedJSON(w, nil)
}

func (h *WishlistHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := util.GetUserIDFromContext(ctx)
	if !ok {
		ErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID := parseUintURLParam(r, "productID")
	if productID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.wishlistService.RemoveProduct(ctx, userID, productID); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, nil)
}
