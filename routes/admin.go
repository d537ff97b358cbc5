package routes

import (
	orderControllers "github.com/BirasaDivine/eato-app/controllers/order"
	productControllers "github.com/BirasaDivine/eato-app/controllers/product"
	userControllers "github.com/BirasaDivine/eato-app/controllers/user"
	"github.com/BirasaDivine/eato-app/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(db))

		// ─────────── Marketplace Oversight ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.PUT("/products/:id/deactivate", productControllers.AdminDeactivateProduct(db))
	}
}
