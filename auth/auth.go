package auth

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignUpRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	FullName        string `json:"full_name" binding:"required"`
	Phone           string `json:"phone"`
	Role            string `json:"role" binding:"required"`
	BusinessName    string `json:"business_name"`
	BusinessAddress string `json:"business_address"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/signup
func SignUpHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		role := models.Role(strings.ToLower(strings.TrimSpace(req.Role)))
		if role != models.RoleConsumer && role != models.RoleFBO {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be consumer or fbo"})
			return
		}
		if role == models.RoleFBO && strings.TrimSpace(req.BusinessName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "business_name is required for food business accounts"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing models.Profile
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
			return
		}

		profile := models.Profile{
			ID:              uuid.NewString(),
			Email:           email,
			PasswordHash:    string(hash),
			FullName:        req.FullName,
			Phone:           req.Phone,
			Role:            role,
			BusinessName:    req.BusinessName,
			BusinessAddress: req.BusinessAddress,
		}

		if err := db.Create(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		token, err := issueJWT(profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created successfully",
			"user":    profile,
			"token":   token,
		})
	}
}

// POST /auth/signin
func SignInHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var profile models.Profile
		if err := db.Where("email = ?", email).First(&profile).Error; err != nil {
			// Same message for unknown email and bad password
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := issueJWT(profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    profile,
			"token":   token,
		})
	}
}

// issueJWT generates a signed token for a profile
func issueJWT(p models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": p.ID,
		"email":   p.Email,
		"role":    string(p.Role),
		"name":    p.FullName,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
