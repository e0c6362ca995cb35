// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TaskHandler    *handler.TaskHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	FileHandler    *handler.FileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	taskHandler    *handler.TaskHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	fileHandler    *handler.FileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		taskHandler:    params.TaskHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		fileHandler:    params.FileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)

	// Public uploads
	e.POST("/uploads", r.fileHandler.Upload)
	e.GET("/uploads/:name", r.fileHandler.Download)

	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireAccountType(entity.AccountTypeAdmin)

	api := e.Group("/api")

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Signup)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.GET("/profile", r.userHandler.GetProfile, authenticate)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser, authenticate)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, authenticate)
	}

	tasksGroup := api.Group("/tasks", authenticate)
	{
		tasksGroup.POST("", r.taskHandler.CreateTask)
		tasksGroup.GET("", r.taskHandler.ListTasks)
		tasksGroup.GET("/:id", r.taskHandler.GetTask)
		tasksGroup.PUT("/status/:id", r.taskHandler.UpdateTaskStatus)
		tasksGroup.PUT("/:id", r.taskHandler.UpdateTask)
		tasksGroup.DELETE("/:id", r.taskHandler.DeleteTask)
	}

	// Public, unlike the rest of /api/products
	api.POST("/products/uploads", r.productHandler.UploadProductFile)

	productsGroup := api.Group("/products", authenticate)
	{
		productsGroup.POST("", r.productHandler.CreateProduct, adminOnly)
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.GET("/:id/qr", r.productHandler.GetProductQR)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, adminOnly)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, adminOnly)
	}

	ordersGroup := api.Group("/orders", authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/status/:id", r.orderHandler.UpdateOrderStatus)
		ordersGroup.PUT("/:id", r.orderHandler.UpdateOrder)
		ordersGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}
}
