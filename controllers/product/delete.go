package productcontroller

import (
	"net/http"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeactivateProduct takes one of the seller's listings off the catalog.
// Rows are kept (order items reference them); the product just stops selling.
func DeactivateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if product.SellerID != sellerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only remove your own products"})
			return
		}

		if err := db.Model(&product).Update("is_active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product removed from catalog"})
	}
}

// AdminDeactivateProduct is the API-key-gated variant for moderation.
func AdminDeactivateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		result := db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deactivated"})
	}
}
