package routes

import (
	cartControllers "github.com/BirasaDivine/eato-app/controllers/cart"
	favoriteControllers "github.com/BirasaDivine/eato-app/controllers/favorite"
	orderControllers "github.com/BirasaDivine/eato-app/controllers/order"
	userControllers "github.com/BirasaDivine/eato-app/controllers/user"
	"github.com/BirasaDivine/eato-app/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile & Session ────────────────
		userGroup.GET("", userControllers.GetProfile(db))         // GET /user
		userGroup.PUT("", userControllers.UpdateProfile(db))      // PUT /user
		userGroup.GET("/session", userControllers.GetSession(db)) // GET /user/session

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))               // GET /user/cart
			cartGroup.POST("", cartControllers.AddCartItem(db))              // POST /user/cart
			cartGroup.PUT("/:itemID", cartControllers.UpdateCartItem(db))    // PUT /user/cart/:itemID
			cartGroup.DELETE("/:itemID", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:itemID
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))          // DELETE /user/cart
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db)) // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetBuyerOrdersHandler(db))

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("", favoriteControllers.GetFavorites(db))
			favGroup.POST("/:productID", favoriteControllers.ToggleFavorite(db))
		}
	}
}
