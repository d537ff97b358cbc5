package cartControllers

import (
	"fmt"
	"net/http"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// POST /user/cart — add a product, or increment the existing line
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Fetch product from DB
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		if !product.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is no longer available"})
			return
		}
		if product.SellerID == userID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot add your own product to the cart"})
			return
		}

		// Existing line gets incremented, capped by current stock
		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", userID, input.ProductID).First(&item).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		newQuantity := input.Quantity
		if err == nil {
			newQuantity += item.Quantity
		}
		if newQuantity > product.Quantity {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Only %d of %s available", product.Quantity, product.Name),
			})
			return
		}

		if err == gorm.ErrRecordNotFound {
			item = models.CartItem{
				UserID:    userID,
				ProductID: product.ID,
				Quantity:  newQuantity,
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			item.Product = product
			c.JSON(http.StatusCreated, item)
			return
		}

		item.Quantity = newQuantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		item.Product = product
		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/:itemID — set a line's quantity
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("itemID")

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Preload("Product").
			Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if !item.Product.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is no longer available"})
			return
		}
		if input.Quantity > item.Product.Quantity {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Only %d of %s available", item.Product.Quantity, item.Product.Name),
			})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:itemID
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("itemID")

		result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var items []models.CartItem
		if err := db.Preload("Product").Preload("Product.Seller").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
