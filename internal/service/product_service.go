package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/util"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrSKUAlreadyExists SKU必須唯一
	ErrSKUAlreadyExists = errors.New("sku already exists")
)

// CatalogPage 前台商品列表頁資料
type CatalogPage struct {
	Products   []model.Product  `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Categories []model.Category `json:"categories"`
	Brands     []model.Brand    `json:"brands"`
}

// ProductDetail 前台商品詳情頁資料
type ProductDetail struct {
	Product         *model.Product  `json:"product"`
	RelatedProducts []model.Product `json:"related_products"`
}

type IProductService interface {
	// BrowseCatalog 前台目錄: 只含可見商品，附篩選用分類/品牌
	BrowseCatalog(ctx context.Context, filter db.ProductFilter, page, pageSize int) (*CatalogPage, error)
	// GetProductDetail 依slug取商品與相關商品
	GetProductDetail(ctx context.Context, slug string) (*ProductDetail, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]model.Product, error)
	GetRootCategories(ctx context.Context, limit int) ([]model.Category, error)

	// 後台CRUD
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	ListProducts(ctx context.Context, search string, page, pageSize int) ([]model.Product, int64, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) *ProductService {
	if productRepo == nil {
		panic("product service dependency productRepo is nil")
	}
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) BrowseCatalog(ctx context.Context, filter db.ProductFilter, page, pageSize int) (*CatalogPage, error) {
	filter.OnlyActive = true

	products, total, err := s.productRepo.GetProductsPaginated(ctx, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	categories, err := s.productRepo.GetActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := s.productRepo.GetActiveBrands(ctx)
	if err != nil {
		return nil, err
	}

	return &CatalogPage{
		Products:   products,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		Categories: categories,
		Brands:     brands,
	}, nil
}

func (s *ProductService) GetProductDetail(ctx context.Context, slug string) (*ProductDetail, error) {
	product, err := s.productRepo.GetProductBySlug(ctx, slug)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	// 下架商品前台看不到
	if !product.IsVisible() {
		return nil, ErrProductNotFound
	}

	related, err := s.productRepo.GetRelatedProducts(ctx, product, 4)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product:         product,
		RelatedProducts: related,
	}, nil
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context, limit int) ([]model.Product, error) {
	return s.productRepo.GetFeaturedProducts(ctx, limit)
}

func (s *ProductService) GetRootCategories(ctx context.Context, limit int) ([]model.Category, error) {
	return s.productRepo.GetRootCategories(ctx, limit)
}

func (s *ProductService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// 後台列表含下架商品
func (s *ProductService) ListProducts(ctx context.Context, search string, page, pageSize int) ([]model.Product, int64, error) {
	filter := db.ProductFilter{Search: search}
	return s.productRepo.GetProductsPaginated(ctx, filter, page, pageSize)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if _, err := s.productRepo.GetProductBySKU(ctx, product.SKU); err == nil {
		return ErrSKUAlreadyExists
	} else if !errors.Is(err, db.ErrProductNotFound) {
		return err
	}

	product.Slug = util.Slugify(product.Name)
	return s.productRepo.CreateProduct(ctx, product)
}

// 名稱改了才重新產生slug
func (s *ProductService) UpdateProduct(ctx context.Context, product *model.Product) error {
	existing, err := s.GetProduct(ctx, product.ProductID)
	if err != nil {
		return err
	}

	if product.SKU != existing.SKU {
		if _, err := s.productRepo.GetProductBySKU(ctx, product.SKU); err == nil {
			return ErrSKUAlreadyExists
		} else if !errors.Is(err, db.ErrProductNotFound) {
			return err
		}
	}

	if product.Name != existing.Name {
		product.Slug = util.Slugify(product.Name)
	} else {
		product.Slug = existing.Slug
	}

	return s.productRepo.UpdateProduct(ctx, product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}

var _ IProductService = (*ProductService)(nil)
