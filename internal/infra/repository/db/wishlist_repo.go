package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

type WishlistRepo struct {
	db *DbDao
}

func NewWishlistRepo(db *DbDao) *WishlistRepo {
	return &WishlistRepo{db: db}
}

func (s *WishlistRepo) GetWishlistByUserID(ctx context.Context, userID uint) ([]model.Wishlist, error) {
	var items []model.Wishlist
	err := s.db.WithContext(ctx).
		Preload("Product.Category").
		Preload("Product.Brand").
		Where("user_id = ?", userID).
		Find(&items).Error
	return items, err
}

func (s *WishlistRepo) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Wishlist{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

func (s *WishlistRepo) CreateWishlistItem(ctx context.Context, item *model.Wishlist) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *WishlistRepo) DeleteWishlistItem(ctx context.Context, userID, productID uint) error {
	return s.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.Wishlist{}).Error
}
