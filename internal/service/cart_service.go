package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/shopspring/decimal"
)

var (
	// ErrCartItemNotExist 購物車品項不存在
	ErrCartItemNotExist = errors.New("cart item is not exist")
	// ErrInvalidQuantity 數量必須為正整數
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrNotCartOwner 操作他人購物車的品項
	ErrNotCartOwner = errors.New("cart item does not belong to user")
)

// CartView 前台購物車頁資料
type CartView struct {
	Cart      *model.Cart     `json:"cart"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type ICartService interface {
	GetCart(ctx context.Context, userID uint) (*CartView, error)
	// AddItem 已在購物車的商品合併數量，否則以商品現價建立品項
	AddItem(ctx context.Context, userID, productID uint, quantity int) error
	UpdateItemQuantity(ctx context.Context, userID, cartItemID uint, quantity int) error
	RemoveItem(ctx context.Context, userID, cartItemID uint) error
	ClearCart(ctx context.Context, userID uint) error
}

type CartService struct {
	cartRepo    db.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository) *CartService {
	if cartRepo == nil {
		panic("cart service dependency cartRepo is nil")
	}
	if productRepo == nil {
		panic("cart service dependency productRepo is nil")
	}
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *CartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	cart, err := s.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	full, err := s.cartRepo.GetCartWithItems(ctx, userID)
	if err != nil && !errors.Is(err, db.ErrCartNotFound) {
		return nil, err
	}
	if full != nil {
		cart = full
	}

	total := decimal.Zero
	itemCount := 0
	for _, item := range cart.Items {
		total = total.Add(item.LineTotal())
		itemCount += item.Quantity
	}

	return &CartView{Cart: cart, Total: total, ItemCount: itemCount}, nil
}

// 單價在加入當下快照，之後商品調價不影響已在車內的品項
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	if !product.IsVisible() {
		return ErrProductNotFound
	}

	cart, err := s.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	existing, err := s.cartRepo.GetCartItem(ctx, cart.CartID, productID)
	if err == nil {
		return s.cartRepo.UpdateCartItemQuantity(ctx, existing.CartItemID, existing.Quantity+quantity)
	}
	if !errors.Is(err, db.ErrCartItemNotFound) {
		return err
	}

	return s.cartRepo.CreateCartItem(ctx, &model.CartItem{
		CartID:    cart.CartID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     product.Price,
	})
}

func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, cartItemID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if err := s.checkOwnership(ctx, userID, cartItemID); err != nil {
		return err
	}
	return s.cartRepo.UpdateCartItemQuantity(ctx, cartItemID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, cartItemID uint) error {
	if err := s.checkOwnership(ctx, userID, cartItemID); err != nil {
		return err
	}
	return s.cartRepo.DeleteCartItem(ctx, cartItemID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uint) error {
	cart, err := s.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.ClearCart(ctx, cart.CartID)
}

// 品項必須屬於該用戶的購物車
func (s *CartService) checkOwnership(ctx context.Context, userID, cartItemID uint) error {
	item, err := s.cartRepo.GetCartItemByID(ctx, cartItemID)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return ErrCartItemNotExist
	}
	if err != nil {
		return err
	}

	cart, err := s.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}
	if item.CartID != cart.CartID {
		return fmt.Errorf("%w: item %d", ErrNotCartOwner, cartItemID)
	}
	return nil
}

var _ ICartService = (*CartService)(nil)
