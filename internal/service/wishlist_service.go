package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
)

var (
	// ErrAlreadyInWishlist 商品已在願望清單
	ErrAlreadyInWishlist = errors.New("product is already in wishlist")
)

type IWishlistService interface {
	GetWishlist(ctx context.Context, userID uint) ([]model.Wishlist, error)
	AddProduct(ctx context.Context, userID, productID uint) error
	RemoveProduct(ctx context.Context, userID, productID uint) error
}

type WishlistService struct {
	wishlistRepo db.IWishlistRepository
	productRepo  db.IProductRepository
}

func NewWishlistService(wishlistRepo db.IWishlistRepository, productRepo db.IProductRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (s *WishlistService) GetWishlist(ctx context.Context, userID uint) ([]model.Wishlist, error) {
	return s.wishlistRepo.GetWishlistByUserID(ctx, userID)
}

// 重複加入不報錯寫入，回傳ErrAlreadyInWishlist讓前端提示
func (s *WishlistService) AddProduct(ctx context.Context, userID, productID uint) error {
	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, db.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	exists, err := s.wishlistRepo.Exists(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInWishlist
	}

	return s.wishlistRepo.CreateWishlistItem(ctx, &model.Wishlist{
		UserID:    userID,
		ProductID: productID,
	})
}

func (s *WishlistService) RemoveProduct(ctx context.Context, userID, productID uint) error {
	return s.wishlistRepo.DeleteWishlistItem(ctx, userID, productID)
}

var _ IWishlistService = (*WishlistService)(nil)
