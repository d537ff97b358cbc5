package userControllers

import (
	"net/http"
	"strings"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	FullName        *string `json:"full_name"`
	Phone           *string `json:"phone"`
	AvatarURL       *string `json:"avatar_url"`
	BusinessName    *string `json:"business_name"`
	BusinessAddress *string `json:"business_address"`
}

// GET /user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var profile models.Profile
		if err := db.First(&profile, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// GET /user/session — profile plus the derived counters the UI header needs,
// in a single round trip
func GetSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var profile models.Profile
		if err := db.First(&profile, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var cartCount, favoritesCount int64
		if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}
		if err := db.Model(&models.Favorite{}).Where("user_id = ?", userID).Count(&favoritesCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":            profile,
			"cart_count":      cartCount,
			"favorites_count": favoritesCount,
		})
	}
}

// PUT /user
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var profile models.Profile
		if err := db.First(&profile, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.FullName != nil {
			updates["full_name"] = *input.FullName
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.AvatarURL != nil {
			updates["avatar_url"] = *input.AvatarURL
		}
		// Business fields only make sense on seller accounts
		if profile.Role == models.RoleFBO {
			if input.BusinessName != nil {
				if strings.TrimSpace(*input.BusinessName) == "" {
					c.JSON(http.StatusBadRequest, gin.H{"error": "business_name cannot be empty"})
					return
				}
				updates["business_name"] = *input.BusinessName
			}
			if input.BusinessAddress != nil {
				updates["business_address"] = *input.BusinessAddress
			}
		}

		if len(updates) > 0 {
			if err := db.Model(&profile).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}

		c.JSON(http.StatusOK, profile)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.Profile
		if err := db.
			Select("id", "email", "full_name", "phone", "role", "business_name", "created_at"). // public fields only
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// DELETE /admin/users/:id — removes the account and its cart/favorites.
// Orders are kept for the other party's records.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user id is required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", id).Delete(&models.Profile{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
