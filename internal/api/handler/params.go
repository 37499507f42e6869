package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/go-chi/chi/v5"
)

func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parsePageSize(r *http.Request, fallback int) int {
	size, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || size < 1 {
		return fallback
	}
	if size > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return size
}

// parseUintURLParam 取路徑參數並轉uint，0表示無效
func parseUintURLParam(r *http.Request, key string) uint {
	v, err := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func parseUintQuery(r *http.Request, key string) *uint {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
