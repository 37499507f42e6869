package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// Home 首頁: 精選商品 + 頂層分類
func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured, err := h.productService.GetFeaturedProducts(ctx, constants.HomeFeaturedLimit)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	categories, err := h.productService.GetRootCategories(ctx, constants.HomeCategoryLimit)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, map[string]any{
		"featured_products": featured,
		"categories":        categories,
	})
}

// Catalog 前台商品列表，支援搜尋/分類/品牌/價格帶篩選與排序
func (h *ProductHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := db.ProductFilter{
		Search:     q.Get("search"),
		CategoryID: parseUintQuery(r, "category_id"),
		BrandID:    parseUintQuery(r, "brand_id"),
		SortBy:     q.Get("sort_by"),
		SortOrder:  q.Get("sort_order"),
	}
	if raw := q.Get("min_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := q.Get("max_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &v
		}
	}

	page := parsePage(r)
	pageSize := parsePageSize(r, constants.DefaultPageSize)

	catalog, err := h.productService.BrowseCatalog(ctx, filter, page, pageSize)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, catalog)
}

// Show 依slug取商品詳情與相關商品
func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	detail, err := h.productService.GetProductDetail(ctx, slug)
	if err != nil {
		serviceErrorJSON(w, err)
		return
	}

	SuccessJSON(w, detail)
}
