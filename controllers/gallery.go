package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"purdetall-backend/config"
	"purdetall-backend/models"
	"purdetall-backend/utils"
)

// galleryRow joins the linked service title onto each entry.
type galleryRow struct {
	models.GalleryEntry
	ServiceTitle *string `json:"service_title"`
}

func galleryQuery() *gorm.DB {
	return config.DB.Table("gallery").
		Select("gallery.*, services.title AS service_title").
		Joins("LEFT JOIN services ON gallery.service_id = services.id")
}

func GetGallery(c *gin.Context) {
	var rows []galleryRow
	if err := galleryQuery().
		Order("gallery.is_featured DESC, gallery.sort_order ASC, gallery.created_at DESC").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la galería")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func GetFeaturedGallery(c *gin.Context) {
	var rows []galleryRow
	if err := galleryQuery().
		Where("gallery.is_featured = ?", true).
		Order("gallery.sort_order ASC, gallery.created_at DESC").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la galería destacada")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func GetGalleryAdmin(c *gin.Context) {
	var rows []galleryRow
	if err := galleryQuery().
		Order("gallery.created_at DESC").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la galería")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateGalleryEntry requires both the before and the after image.
func CreateGalleryEntry(c *gin.Context) {
	if strings.TrimSpace(c.PostForm("title")) == "" {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Msg: "El título es requerido", Path: "title"},
		})
		return
	}

	beforeFile, beforeErr := c.FormFile("before_image")
	afterFile, afterErr := c.FormFile("after_image")
	if beforeErr != nil || afterErr != nil {
		utils.RespondWithError(c, http.StatusBadRequest, `Se requieren tanto la imagen "antes" como "después"`)
		return
	}

	beforeURL, err := utils.SaveImage(c, beforeFile, "gallery", "gallery-before")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	afterURL, err := utils.SaveImage(c, afterFile, "gallery", "gallery-after")
	if err != nil {
		utils.RemoveImage(beforeURL)
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry := models.GalleryEntry{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		BeforeImage: beforeURL,
		AfterImage:  afterURL,
		ServiceID:   formUintPtr(c, "service_id"),
		IsFeatured:  formBool(c, "is_featured", false),
		SortOrder:   formInt(c, "sort_order", 0),
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al crear la entrada de galería")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Entrada de galería creada correctamente",
		"galleryId": entry.ID,
	})
}

// UpdateGalleryEntry replaces either image independently when a new file is
// sent for it; old files are unlinked before the row update.
func UpdateGalleryEntry(c *gin.Context) {
	if strings.TrimSpace(c.PostForm("title")) == "" {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Msg: "El título es requerido", Path: "title"},
		})
		return
	}

	var entry models.GalleryEntry
	if err := config.DB.First(&entry, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Entrada de galería no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la entrada")
		}
		return
	}

	if file, err := c.FormFile("before_image"); err == nil {
		utils.RemoveImage(entry.BeforeImage)
		url, saveErr := utils.SaveImage(c, file, "gallery", "gallery-before")
		if saveErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, saveErr.Error())
			return
		}
		entry.BeforeImage = url
	}
	if file, err := c.FormFile("after_image"); err == nil {
		utils.RemoveImage(entry.AfterImage)
		url, saveErr := utils.SaveImage(c, file, "gallery", "gallery-after")
		if saveErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, saveErr.Error())
			return
		}
		entry.AfterImage = url
	}

	entry.Title = c.PostForm("title")
	entry.Description = c.PostForm("description")
	entry.ServiceID = formUintPtr(c, "service_id")
	entry.IsFeatured = formBool(c, "is_featured", false)
	entry.SortOrder = formInt(c, "sort_order", 0)

	if err := config.DB.Save(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la entrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Entrada actualizada correctamente"})
}

func DeleteGalleryEntry(c *gin.Context) {
	var entry models.GalleryEntry
	if err := config.DB.First(&entry, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Entrada no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la entrada")
		}
		return
	}

	if err := config.DB.Delete(&models.GalleryEntry{}, "id = ?", entry.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al eliminar la entrada")
		return
	}

	utils.RemoveImage(entry.BeforeImage)
	utils.RemoveImage(entry.AfterImage)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Entrada eliminada correctamente"})
}
