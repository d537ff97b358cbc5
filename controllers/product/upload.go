package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// uploadsRoot is where product images land; served back via /uploads
func uploadsRoot() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "/var/www/eato/uploads"
}

// saveProductImages stores the uploaded files and returns their public URLs.
func saveProductImages(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	saveDir := filepath.Join(uploadsRoot(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload folder: %w", err)
	}

	var urls []string
	for _, file := range files {
		ext := filepath.Ext(file.Filename)
		base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		urls = append(urls, "/uploads/products/"+filename)
	}
	return urls, nil
}
