package favoriteControllers

import (
	"net/http"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /user/favorites/:productID — add on first call, remove on the next
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		productID := c.Param("productID")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var fav models.Favorite
		err := db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&fav).Error
		if err == nil {
			if err := db.Delete(&fav).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"favorited": false})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorite"})
			return
		}

		fav = models.Favorite{UserID: userID, ProductID: product.ID}
		if err := db.Create(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"favorited": true})
	}
}

// GET /user/favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var favorites []models.Favorite
		if err := db.Preload("Product").Preload("Product.Seller").
			Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		c.JSON(http.StatusOK, favorites)
	}
}
