// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comanda/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.GET("/session", r.sessionHandler.Current)
	}

	// Catalog routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.List)
		catalogGroup.POST("/refresh", r.catalogHandler.Refresh)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.List)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items/:id", r.cartHandler.Add)
		cartGroup.DELETE("/items/:id", r.cartHandler.Remove)
	}

	// Checkout routes
	e.POST("/checkout", r.checkoutHandler.Submit)
	e.GET("/employees", r.checkoutHandler.Employees)

	// Order feed routes, one stream per category
	ordersGroup := e.Group("/orders")
	{
		ordersGroup.GET("/:category", r.orderHandler.List)
		ordersGroup.PUT("/:category/:id/paid", r.orderHandler.MarkPaid)
	}
}
