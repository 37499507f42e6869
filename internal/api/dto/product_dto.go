package dto

import (
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

// 金額欄位用字串傳輸，避免float精度問題
type ProductDTO struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`
	SKU              string `json:"sku"`
	Price            string `json:"price"`
	ComparePrice     string `json:"compare_price"`
	StockQuantity    int    `json:"stock_quantity"`
	CategoryID       *uint  `json:"category_id"`
	BrandID          *uint  `json:"brand_id"`
	IsFeatured       bool   `json:"is_featured"`
	IsActive         bool   `json:"is_active"`
	Status           string `json:"status"`
}

func (d *ProductDTO) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.SKU == "" {
		return errors.New("sku is required")
	}
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return errors.New("price must be a valid decimal")
	}
	if price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if d.ComparePrice != "" {
		cp, err := decimal.NewFromString(d.ComparePrice)
		if err != nil || cp.IsNegative() {
			return errors.New("compare_price must be a valid non-negative decimal")
		}
	}
	if d.StockQuantity < 0 {
		return errors.New("stock_quantity must not be negative")
	}
	switch d.Status {
	case model.ProductStatusActive, model.ProductStatusInactive, model.ProductStatusDraft:
	default:
		return errors.New("status must be one of active, inactive, draft")
	}
	return nil
}

func (d *ProductDTO) ToModel() *model.Product {
	price, _ := decimal.NewFromString(d.Price)
	product := &model.Product{
		Name:             d.Name,
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		SKU:              d.SKU,
		Price:            price,
		StockQuantity:    d.StockQuantity,
		CategoryID:       d.CategoryID,
		BrandID:          d.BrandID,
		IsFeatured:       d.IsFeatured,
		IsActive:         d.IsActive,
		Status:           d.Status,
	}
	if d.ComparePrice != "" {
		cp, _ := decimal.NewFromString(d.ComparePrice)
		product.ComparePrice = &cp
	}
	return product
}
