package handlers

import (
	"farm_manager/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth       *AuthHandler
	Garden     *GardenHandler
	Harvest    *HarvestHandler
	Inventory  *InventoryHandler
	Care       *CareHandler
	Labor      *LaborHandler
	Order      *OrderHandler
	Statistics *StatisticsHandler
	Health     *HealthHandler
}

// NewRouter registers every route. Everything under /api except register,
// login and health requires a bearer token.
func NewRouter(h Handlers, authService services.AuthService, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(log), gin.Recovery())

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	api.GET("/health", h.Health.Health)
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(AuthRequired(authService))
	{
		protected.POST("/auth/logout", h.Auth.Logout)
		protected.GET("/auth/me", h.Auth.Me)
		protected.PUT("/auth/password", h.Auth.ChangePassword)

		protected.GET("/gardens", h.Garden.List)
		protected.POST("/gardens", h.Garden.Create)
		protected.GET("/gardens/:id", h.Garden.Get)
		protected.PUT("/gardens/:id", h.Garden.Update)
		protected.DELETE("/gardens/:id", h.Garden.Delete)

		protected.GET("/crop-types", h.Harvest.ListCropTypes)
		protected.POST("/crop-types", h.Harvest.CreateCropType)
		protected.PUT("/crop-types/:id", h.Harvest.UpdateCropType)
		protected.DELETE("/crop-types/:id", h.Harvest.DeleteCropType)

		protected.GET("/harvests", h.Harvest.ListHarvests)
		protected.POST("/harvests", h.Harvest.CreateHarvest)
		protected.PUT("/harvests/:id", h.Harvest.UpdateHarvest)
		protected.DELETE("/harvests/:id", h.Harvest.DeleteHarvest)

		inventory := protected.Group("/inventory")
		inventory.GET("/categories", h.Inventory.ListCategories)
		inventory.POST("/categories", h.Inventory.CreateCategory)
		inventory.PUT("/categories/:id", h.Inventory.UpdateCategory)
		inventory.DELETE("/categories/:id", h.Inventory.DeleteCategory)
		inventory.GET("/items", h.Inventory.ListItems)
		inventory.POST("/items", h.Inventory.CreateItem)
		inventory.PUT("/items/:id", h.Inventory.UpdateItem)
		inventory.DELETE("/items/:id", h.Inventory.DeleteItem)
		inventory.GET("/transactions", h.Inventory.ListTransactions)
		inventory.POST("/transactions", h.Inventory.CreateTransaction)

		protected.GET("/care-activities", h.Care.List)
		protected.POST("/care-activities", h.Care.Create)
		protected.DELETE("/care-activities/:id", h.Care.Delete)

		protected.GET("/workers", h.Labor.ListWorkers)
		protected.POST("/workers", h.Labor.CreateWorker)
		protected.PUT("/workers/:id", h.Labor.UpdateWorker)
		protected.DELETE("/workers/:id", h.Labor.DeleteWorker)

		protected.GET("/labor-records", h.Labor.ListRecords)
		protected.POST("/labor-records", h.Labor.CreateRecord)
		protected.PATCH("/labor-records/:id/payment", h.Labor.UpdatePaymentStatus)
		protected.DELETE("/labor-records/:id", h.Labor.DeleteRecord)

		protected.GET("/customers", h.Order.ListCustomers)
		protected.POST("/customers", h.Order.CreateCustomer)
		protected.PUT("/customers/:id", h.Order.UpdateCustomer)
		protected.DELETE("/customers/:id", h.Order.DeleteCustomer)

		protected.GET("/orders", h.Order.ListOrders)
		protected.POST("/orders", h.Order.CreateOrder)
		protected.GET("/orders/:id", h.Order.GetOrder)
		protected.GET("/orders/:id/items", h.Order.GetOrderItems)
		protected.PATCH("/orders/:id/status", h.Order.UpdateStatus)
		protected.PATCH("/orders/:id/payment", h.Order.UpdatePayment)
		protected.DELETE("/orders/:id", h.Order.DeleteOrder)

		protected.GET("/statistics", h.Statistics.Summary)
		protected.GET("/statistics/export", h.Statistics.Export)
	}

	return router
}
