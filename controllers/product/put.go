package productcontroller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct updates one of the seller's own listings.
// Accepts the same fields as CreateProduct; all optional. New "images" files
// replace the existing set.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if product.SellerID != sellerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own products"})
			return
		}

		// Helper to parse float fields safely
		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}

		if v := strings.TrimSpace(c.PostForm("name")); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("category"); v != "" {
			if !models.ValidCategory(v) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			product.Category = models.Category(v)
		}
		if v := parseFloat(c.PostForm("original_price")); v != nil {
			product.OriginalPrice = *v
		}
		if v := parseFloat(c.PostForm("discounted_price")); v != nil {
			product.DiscountedPrice = *v
		}
		if product.DiscountedPrice >= product.OriginalPrice {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discounted_price must be below original_price"})
			return
		}
		if v := c.PostForm("quantity"); v != "" {
			q, err := strconv.Atoi(v)
			if err != nil || q < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
				return
			}
			product.Quantity = q
		}
		if v := c.PostForm("expiry_date"); v != "" {
			d, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiry_date, expected YYYY-MM-DD"})
				return
			}
			product.ExpiryDate = d
		}
		if v := c.PostForm("is_active"); v != "" {
			active, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_active"})
				return
			}
			product.IsActive = active
		}

		// Optional replacement images
		if form, formErr := c.MultipartForm(); formErr == nil && form != nil {
			if files := form.File["images"]; len(files) > 0 {
				urls, err := saveProductImages(c, files)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				product.ImageURLs = urls
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
