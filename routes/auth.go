package routes

import (
	"github.com/BirasaDivine/eato-app/auth"
	productControllers "github.com/BirasaDivine/eato-app/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.SignUpHandler(db))
		authGroup.POST("/signin", auth.SignInHandler(db))
	}
}

// SetupCatalogRoutes registers the public product browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))        // GET /products?category=&search=&sort_by=
		products.GET("/:id", productControllers.GetProductByID(db)) // GET /products/:id
	}
}
