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

// CreateProduct creates a new listing for the authenticated seller.
// Multipart form: name, category, original_price, discounted_price, quantity,
// expiry_date (YYYY-MM-DD), optional description and "images" files.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sellerID := userIDVal.(string)

		// Required fields
		name := strings.TrimSpace(c.PostForm("name"))
		category := c.PostForm("category")
		originalPriceStr := c.PostForm("original_price")
		discountedPriceStr := c.PostForm("discounted_price")
		quantityStr := c.PostForm("quantity")
		expiryStr := c.PostForm("expiry_date")
		if name == "" || category == "" || originalPriceStr == "" || discountedPriceStr == "" ||
			quantityStr == "" || expiryStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "name, category, original_price, discounted_price, quantity and expiry_date are required",
			})
			return
		}

		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}

		originalPrice, err := strconv.ParseFloat(originalPriceStr, 64)
		if err != nil || originalPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
			return
		}
		discountedPrice, err := strconv.ParseFloat(discountedPriceStr, 64)
		if err != nil || discountedPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discounted_price"})
			return
		}
		if discountedPrice >= originalPrice {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discounted_price must be below original_price"})
			return
		}

		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		expiryDate, err := time.Parse("2006-01-02", expiryStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiry_date, expected YYYY-MM-DD"})
			return
		}
		if expiryDate.Before(time.Now().Truncate(24 * time.Hour)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expiry_date cannot be in the past"})
			return
		}

		// Optional images
		var imageURLs []string
		if form, formErr := c.MultipartForm(); formErr == nil && form != nil {
			if files := form.File["images"]; len(files) > 0 {
				imageURLs, err = saveProductImages(c, files)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
			}
		}

		product := models.Product{
			SellerID:        sellerID,
			Name:            name,
			Description:     c.PostForm("description"),
			Category:        models.Category(category),
			OriginalPrice:   originalPrice,
			DiscountedPrice: discountedPrice,
			Quantity:        quantity,
			ExpiryDate:      expiryDate,
			ImageURLs:       imageURLs,
			IsActive:        true,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
