package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxImageSize caps individual image uploads at 5MB.
const MaxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrNotAnImage   = errors.New("Solo se permiten archivos de imagen")
	ErrImageTooBig  = errors.New("La imagen supera el tamaño máximo de 5MB")
	ErrImageStorage = errors.New("Error al guardar la imagen")
)

// UploadsDir returns the root directory for stored images.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "uploads"
}

// SaveImage stores an uploaded image under uploads/<subdir> with a unique
// prefixed filename and returns the public URL path recorded in the row.
func SaveImage(c *gin.Context, file *multipart.FileHeader, subdir, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", ErrNotAnImage
	}
	if file.Size > MaxImageSize {
		return "", ErrImageTooBig
	}

	dir := filepath.Join(UploadsDir(), subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", ErrImageStorage
	}

	name := fmt.Sprintf("%s-%s%s", prefix, uuid.New().String(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", ErrImageStorage
	}

	return "/uploads/" + subdir + "/" + name, nil
}

// RemoveImage deletes a stored image by its public URL path. Best effort:
// a missing file or failed unlink leaves the row change untouched.
func RemoveImage(urlPath string) {
	if urlPath == "" {
		return
	}
	rel := strings.TrimPrefix(urlPath, "/uploads/")
	if rel == urlPath || strings.Contains(rel, "..") {
		return
	}
	_ = os.Remove(filepath.Join(UploadsDir(), filepath.FromSlash(rel)))
}
