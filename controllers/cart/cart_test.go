package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Product{},
		&models.CartItem{},
	))
	return db
}

// newCartRouter wires the cart handlers behind a stub auth middleware.
func newCartRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "consumer")
	})
	r.GET("/cart", GetUserCart(db))
	r.POST("/cart", AddCartItem(db))
	r.PUT("/cart/:itemID", UpdateCartItem(db))
	r.DELETE("/cart/:itemID", DeleteCartItem(db))
	r.DELETE("/cart", ClearUserCart(db))
	return r
}

func seedCartProduct(t *testing.T, db *gorm.DB, sellerID string, stock int) models.Product {
	t.Helper()
	require.NoError(t, db.Create(&models.Profile{
		ID: sellerID, Email: sellerID + "@example.com", PasswordHash: "x",
		Role: models.RoleFBO, BusinessName: sellerID + " Foods",
	}).Error)
	p := models.Product{
		SellerID:        sellerID,
		Name:            "Fresh bread",
		Category:        models.CategoryBakery,
		OriginalPrice:   2000,
		DiscountedPrice: 900,
		Quantity:        stock,
		ExpiryDate:      time.Now().AddDate(0, 0, 2),
		IsActive:        true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func postJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemCreatesAndIncrements(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 5)
	r := newCartRouter(db, "buyer-1")

	w := postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	// Same product again merges into the existing line
	w = postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("user_id = ? AND product_id = ?", "buyer-1", product.ID).First(&item).Error)
	assert.Equal(t, 3, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", "buyer-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddCartItemRejectsBeyondStock(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 2)
	r := newCartRouter(db, "buyer-1")

	w := postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	// Incrementing past stock is refused, line stays at 2
	w = postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", "buyer-1").First(&item).Error)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddCartItemRejectsOwnProduct(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 5)
	r := newCartRouter(db, "seller-1")

	w := postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemRejectsInactiveProduct(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 5)
	require.NoError(t, db.Model(&product).Update("is_active", false).Error)
	r := newCartRouter(db, "buyer-1")

	w := postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemBounds(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 3)
	r := newCartRouter(db, "buyer-1")

	w := postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", "buyer-1").First(&item).Error)

	// Above stock
	w = postJSON(r, http.MethodPut, fmt.Sprintf("/cart/%d", item.ID), gin.H{"quantity": 4})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Below one (binding rejects)
	w = postJSON(r, http.MethodPut, fmt.Sprintf("/cart/%d", item.ID), gin.H{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// In range
	w = postJSON(r, http.MethodPut, fmt.Sprintf("/cart/%d", item.ID), gin.H{"quantity": 3})
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&item, item.ID).Error)
	assert.Equal(t, 3, item.Quantity)
}

func TestUpdateCartItemRejectsDeactivatedProduct(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 5)
	r := newCartRouter(db, "buyer-1")

	w := postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", "buyer-1").First(&item).Error)

	// Seller pulls the listing while it sits in the cart
	require.NoError(t, db.Model(&product).Update("is_active", false).Error)

	w = postJSON(r, http.MethodPut, fmt.Sprintf("/cart/%d", item.ID), gin.H{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.First(&item, item.ID).Error)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartOperationsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 5)

	owner := newCartRouter(db, "buyer-1")
	w := postJSON(owner, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", "buyer-1").First(&item).Error)

	// Another user cannot touch the row
	other := newCartRouter(db, "buyer-2")
	w = postJSON(other, http.MethodPut, fmt.Sprintf("/cart/%d", item.ID), gin.H{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/%d", item.ID), nil)
	rec := httptest.NewRecorder()
	other.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAndClearCart(t *testing.T) {
	db := setupTestDB(t)
	product := seedCartProduct(t, db, "seller-1", 5)
	r := newCartRouter(db, "buyer-1")

	w := postJSON(r, http.MethodPost, "/cart", gin.H{"product_id": product.ID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("user_id = ?", "buyer-1").First(&item).Error)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/%d", item.ID), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", "buyer-1").Count(&count).Error)
	assert.Zero(t, count)

	// Deleting again reports not found
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/%d", item.ID), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
