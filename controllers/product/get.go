package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its seller profile and up to
// four related products from the same category.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam := c.Param("id")
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Seller").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var related []models.Product
		if err := db.
			Where("category = ? AND id != ? AND is_active = ? AND quantity > 0",
				product.Category, product.ID, true).
			Limit(4).
			Find(&related).Error; err != nil {
			related = nil // detail page still renders without suggestions
		}

		c.JSON(http.StatusOK, gin.H{
			"product": product,
			"related": related,
		})
	}
}
