package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
)

// ProductFilter 目錄查詢條件，排序欄位走白名單
type ProductFilter struct {
	Search     string
	CategoryID *uint
	BrandID    *uint
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	SortOrder  string
	OnlyActive bool
}

var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"created_at": "created_at",
}

type ProductDBRepo struct {
	db *DbDao
}

func NewProductDBRepo(db *DbDao) *ProductDBRepo {
	return &ProductDBRepo{db: db}
}

func (s *ProductDBRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

func (s *ProductDBRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Brand").
		First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductDBRepo) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Brand").
		Where("slug = ?", slug).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductDBRepo) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 精選商品，首頁用
func (s *ProductDBRepo) GetFeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).
		Preload("Category").Preload("Brand").
		Where("is_active = ? AND status = ?", true, model.ProductStatusActive).
		Where("is_featured = ?", true).
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Read - 同分類的相關商品，排除自己
func (s *ProductDBRepo) GetRelatedProducts(ctx context.Context, product *model.Product, limit int) ([]model.Product, error) {
	var products []model.Product
	query := s.db.WithContext(ctx).
		Where("is_active = ? AND status = ?", true, model.ProductStatusActive).
		Where("product_id != ?", product.ProductID)
	if product.CategoryID != nil {
		query = query.Where("category_id = ?", *product.CategoryID)
	}
	err := query.Limit(limit).Find(&products).Error
	return products, err
}

// 根據條件分頁查詢商品
func (s *ProductDBRepo) GetProductsPaginated(ctx context.Context, filter ProductFilter, page, pageSize int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	offset := (page - 1) * pageSize
	query := s.db.WithContext(ctx).Model(&model.Product{})

	if filter.OnlyActive {
		query = query.Where("is_active = ? AND status = ?", true, model.ProductStatusActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	// 排序欄位不在白名單就回退name，避免注入
	column, ok := productSortColumns[filter.SortBy]
	if !ok {
		column = "name"
	}
	order := "asc"
	if filter.SortOrder == "desc" {
		order = "desc"
	}

	// 計算總數
	query.Count(&total)

	// 分頁查詢
	err := query.Preload("Category").Preload("Brand").
		Order(column + " " + order).
		Offset(offset).Limit(pageSize).
		Find(&products).Error

	return products, total, err
}

// Update - 更新商品
func (s *ProductDBRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Delete - 軟刪除商品
func (s *ProductDBRepo) DeleteProduct(ctx context.Context, productID uint) error {
	return s.db.WithContext(ctx).Delete(&model.Product{}, productID).Error
}

// Delete - 硬刪除商品
func (s *ProductDBRepo) HardDeleteProduct(ctx context.Context, productID uint) error {
	return s.db.WithContext(ctx).Unscoped().Delete(&model.Product{}, productID).Error
}

func (s *ProductDBRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error
	return total, err
}

// Category / Brand 查詢目錄篩選用

func (s *ProductDBRepo) GetActiveCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&categories).Error
	return categories, err
}

// Read - 根分類 (parent_id is null)，首頁用
func (s *ProductDBRepo) GetRootCategories(ctx context.Context, limit int) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND parent_id IS NULL", true).
		Limit(limit).
		Find(&categories).Error
	return categories, err
}

func (s *ProductDBRepo) GetActiveBrands(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&brands).Error
	return brands, err
}
