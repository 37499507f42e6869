package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type AdminProductHandler struct {
	productService service.IProductService
}

func NewAdminProductHandler(productService service.IProductService) *AdminProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &AdminProductHandler{
		productService: productService,
	}
}

// List 後台商品列表，含下架商品
func (h *AdminProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	search := r.URL.Query().Get("search")
	page := parsePage(r)
	pageSize := parsePageSize(r, constants.AdminPageSize)

	products, total, err := h.productService.ListProducts(ctx, search, page, pageSize)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, map[string]any{
		"products":  products,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *AdminProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	productID := parseUintURLParam(r, "productID")
	if productID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, product)
}

func (h *AdminProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var productDTO dto.ProductDTO
	if err := decodeJSON(r, &productDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := productDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	product := productDTO.ToModel()
	if err := h.productService.CreateProduct(r.Context(), product); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	CreatedJSON(w, product)
}

func (h *AdminProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := parseUintURLParam(r, "productID")
	if productID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var productDTO dto.ProductDTO
	if err := decodeJSON(r, &productDTO); err != nil {
		ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := productDTO.Validate(); err != nil {
		ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	product := productDTO.ToModel()
	product.ProductID = productID
	if err := h.productService.UpdateProduct(r.Context(), product); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, product)
}

func (h *AdminProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := parseUintURLParam(r, "productID")
	if productID == 0 {
		ErrorJSON(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), productID); err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, nil)
}
