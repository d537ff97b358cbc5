package routes

import (
	orderControllers "github.com/BirasaDivine/eato-app/controllers/order"
	productControllers "github.com/BirasaDivine/eato-app/controllers/product"
	userControllers "github.com/BirasaDivine/eato-app/controllers/user"
	"github.com/BirasaDivine/eato-app/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupSellerRoutes registers all "/seller/*" endpoints. Requires a JWT with
// the fbo role.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	sellerGroup := r.Group("/seller")
	sellerGroup.Use(middleware.ValidateToken, middleware.RequireRole("fbo"))
	{
		// ──────────────── Dashboard ────────────────
		sellerGroup.GET("/stats", userControllers.GetSellerStats(db))

		// ──────────────── Product Management ────────────────
		products := sellerGroup.Group("/products")
		{
			products.GET("", productControllers.GetSellerProducts(db))
			products.POST("", productControllers.CreateProduct(db))
			products.PUT("/:id", productControllers.UpdateProduct(db))
			products.DELETE("/:id", productControllers.DeactivateProduct(db))
			products.GET("/export", productControllers.ExportProductsToExcel(db))
		}

		// ──────────────── Order Fulfillment ────────────────
		orders := sellerGroup.Group("/orders")
		{
			orders.GET("", orderControllers.GetSellerOrdersHandler(db))
			orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

			// websocket endpoint for real-time order updates
			orders.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
