package api

import "github.com/RoyceAzure/lab/storefront/internal/api/handler"

type Server struct {
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	WishlistHandler     *handler.WishlistHandler
	AdminHandler        *handler.AdminHandler
	AdminProductHandler *handler.AdminProductHandler
	AdminOrderHandler   *handler.AdminOrderHandler
	AdminCouponHandler  *handler.AdminCouponHandler
}

func NewServer(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	wishlistHandler *handler.WishlistHandler,
	adminHandler *handler.AdminHandler,
	adminProductHandler *handler.AdminProductHandler,
	adminOrderHandler *handler.AdminOrderHandler,
	adminCouponHandler *handler.AdminCouponHandler,
) *Server {
	return &Server{
		ProductHandler:      productHandler,
		CartHandler:         cartHandler,
		CheckoutHandler:     checkoutHandler,
		WishlistHandler:     wishlistHandler,
		AdminHandler:        adminHandler,
		AdminProductHandler: adminProductHandler,
		AdminOrderHandler:   adminOrderHandler,
		AdminCouponHandler:  adminCouponHandler,
	}
}
