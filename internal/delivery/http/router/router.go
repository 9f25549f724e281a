// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		paymentHandler: params.PaymentHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	adminRole := string(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog routes: reads are public, writes require a logged-in seller.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/category/:category", r.productHandler.ListProductsByCategory)

		productGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate)
	}

	// Order routes all require authentication; the admin-only ones add a role check.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("/me", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.OrderTrackingQR)

		orderGroup.GET("", r.orderHandler.ListAllOrders, r.authMiddleware.RequireRole(adminRole))
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateOrderStatus, r.authMiddleware.RequireRole(adminRole))
		orderGroup.POST("/:id/reconcile", r.orderHandler.ReconcileStock, r.authMiddleware.RequireRole(adminRole))
	}

	// Payment routes
	paymentGroup := e.Group("/payment")
	{
		paymentGroup.POST("/process", r.paymentHandler.ProcessPayment, r.authMiddleware.Authenticate)
		paymentGroup.GET("/key", r.paymentHandler.PublishableKey)
	}

	// Admin user management routes
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole(adminRole))
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
