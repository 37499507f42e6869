package router

import (
	"fmt"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, userRepo db.IUserRepository, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.UserIdentityMiddleware)
	r.Use(m.LoggerMiddleware(logger))

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 前台公開路由
		r.Group(func(r chi.Router) {
			r.Get("/", server.ProductHandler.Home)
			r.Get("/products", server.ProductHandler.Catalog)
			r.Get("/products/{slug}", server.ProductHandler.Show)
		})

		// 需要登入的路由
		r.Group(func(r chi.Router) {
			r.Use(m.RequireUserMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Delete("/", server.CartHandler.ClearCart)
				r.Post("/items", server.CartHandler.AddItem)
				r.Put("/items/{itemID}", server.CartHandler.UpdateItem)
				r.Delete("/items/{itemID}", server.CartHandler.RemoveItem)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", server.CheckoutHandler.Preview)
				r.Post("/", server.CheckoutHandler.Process)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", server.CheckoutHandler.MyOrders)
				r.Get("/{orderID}", server.CheckoutHandler.ShowOrder)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", server.WishlistHandler.GetWishlist)
				r.Post("/", server.WishlistHandler.AddProduct)
				r.Delete("/{productID}", server.WishlistHandler.RemoveProduct)
			})
		})

		// 後台路由
		r.Group(func(r chi.Router) {
			r.Use(m.AdminMiddleware(userRepo))

			r.Route("/admin", func(r chi.Router) {
				r.Get("/dashboard", server.AdminHandler.Dashboard)

				r.Route("/products", func(r chi.Router) {
					r.Get("/", server.AdminProductHandler.List)
					r.Post("/", server.AdminProductHandler.Create)
					r.Get("/{productID}", server.AdminProductHandler.Show)
					r.Put("/{productID}", server.AdminProductHandler.Update)
					r.Delete("/{productID}", server.AdminProductHandler.Delete)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", server.AdminOrderHandler.List)
					r.Get("/{orderID}", server.AdminOrderHandler.Show)
					r.Patch("/{orderID}/status", server.AdminOrderHandler.UpdateStatus)
				})

				r.Route("/coupons", func(r chi.Router) {
					r.Get("/", server.AdminCouponHandler.List)
					r.Post("/", server.AdminCouponHandler.Create)
					r.Get("/{couponID}", server.AdminCouponHandler.Show)
					r.Put("/{couponID}", server.AdminCouponHandler.Update)
					r.Delete("/{couponID}", server.AdminCouponHandler.Delete)
				})
			})
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
