// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	WishlistHandler *handler.WishlistHandler
	OrderHandler    *handler.OrderHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	wishlistHandler *handler.WishlistHandler
	orderHandler    *handler.OrderHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		authHandler:     params.AuthHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		wishlistHandler: params.WishlistHandler,
		orderHandler:    params.OrderHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Uploaded product images are served as plain files.
	e.Static("/uploads", r.cfg.Storage.UploadsDir)

	api := e.Group("/api")

	// Public catalog routes
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.List)
		productGroup.GET("/featured", r.catalogHandler.Featured)
		productGroup.GET("/categories", r.catalogHandler.Categories)
		productGroup.GET("/:id", r.catalogHandler.Get)
	}

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.PUT("/me", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
		authGroup.PUT("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Cart routes require authentication
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
		// Checkout lives under the cart as well; it consumes the cart.
		cartGroup.POST("/checkout", r.orderHandler.Checkout)
	}

	// Wishlist routes require authentication
	wishlistGroup := api.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.Get)
		wishlistGroup.POST("/toggle/:productId", r.wishlistHandler.Toggle)
		wishlistGroup.DELETE("", r.wishlistHandler.Clear)
	}

	// Order routes require authentication
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/new", r.orderHandler.Checkout)
		orderGroup.GET("/me", r.orderHandler.ListMine)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.GET("/:id/qrcode", r.orderHandler.TrackingQR)
		orderGroup.PUT("/:id/cancel", r.orderHandler.Cancel)
		orderGroup.PUT("/:id/return", r.orderHandler.Return)
		orderGroup.DELETE("/:id", r.orderHandler.Delete)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the role
	{
		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
		adminGroup.PATCH("/products/:id/featured", r.adminHandler.SetFeatured)
		adminGroup.GET("/products/:id/images", r.adminHandler.ListImages)
		adminGroup.PATCH("/products/:id/images", r.adminHandler.SetImages)
		adminGroup.POST("/products/:id/upload-image", r.adminHandler.UploadImage)
		adminGroup.POST("/products/:id/upload-images", r.adminHandler.UploadImages)
		adminGroup.DELETE("/products/:id/images/:index", r.adminHandler.RemoveImage)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.DELETE("/orders/:id", r.adminHandler.DeleteOrder)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PATCH("/users/:id/role", r.adminHandler.UpdateUserRole)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)

		adminGroup.GET("/stats", r.adminHandler.Stats)
	}
}
