package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, User, Seller,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth + catalog routes (no middleware)
	SetupAuthRoutes(r, db)
	SetupCatalogRoutes(r, db)

	// Consumer routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Seller dashboard routes (JWT + fbo role)
	SetupSellerRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
