package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	productRepo *ProductDBRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *ProductRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("lab_storefront", "localhost", "5432", "royce", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.productRepo = NewProductDBRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *ProductRepoTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM products")
	suite.db.Exec("DELETE FROM categories")
	suite.db.Exec("DELETE FROM brands")
}

func (suite *ProductRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *ProductRepoTestSuite) createTestProduct(name, slug, sku string, price int64, mutate func(*model.Product)) *model.Product {
	product := &model.Product{
		Name:          name,
		Slug:          slug,
		SKU:           sku,
		Price:         decimal.NewFromInt(price),
		StockQuantity: 10,
		IsActive:      true,
		Status:        model.ProductStatusActive,
	}
	if mutate != nil {
		mutate(product)
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *ProductRepoTestSuite) TestGetProductBySlug() {
	suite.createTestProduct("Wireless Mouse", "wireless-mouse", "WM-001", 50, nil)

	found, err := suite.productRepo.GetProductBySlug(context.Background(), "wireless-mouse")

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "WM-001", found.SKU)
}

func (suite *ProductRepoTestSuite) TestGetProductBySlug_NotFound() {
	found, err := suite.productRepo.GetProductBySlug(context.Background(), "missing")

	require.ErrorIs(suite.T(), err, ErrProductNotFound)
	require.Nil(suite.T(), found)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated_OnlyActive() {
	suite.createTestProduct("Active", "active-product", "A-001", 50, nil)
	suite.createTestProduct("Draft", "draft-product", "D-001", 50, func(p *model.Product) {
		p.Status = model.ProductStatusDraft
	})
	suite.createTestProduct("Disabled", "disabled-product", "X-001", 50, func(p *model.Product) {
		p.IsActive = false
	})

	products, total, err := suite.productRepo.GetProductsPaginated(context.Background(), ProductFilter{OnlyActive: true}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Len(suite.T(), products, 1)
	require.Equal(suite.T(), "Active", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated_AdminSeesAll() {
	suite.createTestProduct("Active", "active-product", "A-001", 50, nil)
	suite.createTestProduct("Draft", "draft-product", "D-001", 50, func(p *model.Product) {
		p.Status = model.ProductStatusDraft
	})

	_, total, err := suite.productRepo.GetProductsPaginated(context.Background(), ProductFilter{}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(2), total)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated_Search() {
	suite.createTestProduct("Wireless Mouse", "wireless-mouse", "WM-001", 50, nil)
	suite.createTestProduct("USB Cable", "usb-cable", "UC-001", 25, nil)

	products, total, err := suite.productRepo.GetProductsPaginated(context.Background(), ProductFilter{Search: "mouse"}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Equal(suite.T(), "Wireless Mouse", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated_PriceRange() {
	suite.createTestProduct("Cheap", "cheap-product", "C-001", 10, nil)
	suite.createTestProduct("Mid", "mid-product", "M-001", 50, nil)
	suite.createTestProduct("Expensive", "expensive-product", "E-001", 200, nil)

	min := decimal.NewFromInt(20)
	max := decimal.NewFromInt(100)
	products, total, err := suite.productRepo.GetProductsPaginated(context.Background(), ProductFilter{MinPrice: &min, MaxPrice: &max}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(1), total)
	require.Equal(suite.T(), "Mid", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated_SortByPriceDesc() {
	suite.createTestProduct("Cheap", "cheap-product", "C-001", 10, nil)
	suite.createTestProduct("Expensive", "expensive-product", "E-001", 200, nil)

	products, _, err := suite.productRepo.GetProductsPaginated(context.Background(), ProductFilter{SortBy: "price", SortOrder: "desc"}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Expensive", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetProductsPaginated_BogusSortFallsBack() {
	// 白名單外的排序欄位回退name排序，不會帶進SQL
	suite.createTestProduct("Bravo", "bravo-product", "B-001", 10, nil)
	suite.createTestProduct("Alpha", "alpha-product", "A-001", 200, nil)

	products, _, err := suite.productRepo.GetProductsPaginated(context.Background(), ProductFilter{SortBy: "price; DROP TABLE products"}, 1, 10)

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Alpha", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetFeaturedProducts() {
	suite.createTestProduct("Featured", "featured-product", "F-001", 50, func(p *model.Product) {
		p.IsFeatured = true
	})
	suite.createTestProduct("Normal", "normal-product", "N-001", 50, nil)

	products, err := suite.productRepo.GetFeaturedProducts(context.Background(), 8)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), products, 1)
	require.Equal(suite.T(), "Featured", products[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetRelatedProducts_ExcludesSelf() {
	category := &model.Category{Name: "Accessories", Slug: "accessories", IsActive: true}
	require.NoError(suite.T(), suite.db.Create(category).Error)

	mouse := suite.createTestProduct("Mouse", "mouse-product", "M-001", 50, func(p *model.Product) {
		p.CategoryID = &category.CategoryID
	})
	suite.createTestProduct("Keyboard", "keyboard-product", "K-001", 80, func(p *model.Product) {
		p.CategoryID = &category.CategoryID
	})

	related, err := suite.productRepo.GetRelatedProducts(context.Background(), mouse, 4)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), related, 1)
	require.Equal(suite.T(), "Keyboard", related[0].Name)
}

func (suite *ProductRepoTestSuite) TestDeleteProduct_SoftDelete() {
	product := suite.createTestProduct("Mouse", "mouse-product", "M-001", 50, nil)

	require.NoError(suite.T(), suite.productRepo.DeleteProduct(context.Background(), product.ProductID))

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
	require.Nil(suite.T(), found)
}

// 執行測試套件
func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
