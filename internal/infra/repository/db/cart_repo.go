package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrCartNotFound 購物車不存在
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound 購物車品項不存在
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// GetOrCreateCart 每個用戶一台購物車，不存在就建立
func (s *CartRepo) GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := s.db.WithContext(ctx).
		Where(model.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Read - 取購物車含品項與商品資訊
func (s *CartRepo) GetCartWithItems(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := s.db.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartRepo) GetCartItem(ctx context.Context, cartID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartRepo) GetCartItemByID(ctx context.Context, cartItemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.WithContext(ctx).First(&item, cartItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartRepo) CreateCartItem(ctx context.Context, item *model.CartItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Update - 更新品項數量
func (s *CartRepo) UpdateCartItemQuantity(ctx context.Context, cartItemID uint, quantity int) error {
	return s.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_item_id = ?", cartItemID).
		Update("quantity", quantity).Error
}

// Delete - 移除單一品項
func (s *CartRepo) DeleteCartItem(ctx context.Context, cartItemID uint) error {
	return s.db.WithContext(ctx).
		Unscoped().
		Delete(&model.CartItem{}, cartItemID).Error
}

// Delete - 清空購物車所有品項
func (s *CartRepo) ClearCart(ctx context.Context, cartID uint) error {
	return s.db.WithContext(ctx).
		Unscoped().
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
