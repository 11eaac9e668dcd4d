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

// GetServices returns the active catalog for the public site.
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("is_active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener los servicios")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServicesAdmin returns every service, including inactive ones.
func GetServicesAdmin(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("sort_order ASC, created_at ASC").
		Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener los servicios")
		return
	}

	c.JSON(http.StatusOK, services)
}

func GetService(c *gin.Context) {
	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el servicio")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateService accepts a multipart form with an optional image file.
func CreateService(c *gin.Context) {
	var errs []utils.FieldError
	if strings.TrimSpace(c.PostForm("title")) == "" {
		errs = append(errs, utils.FieldError{Msg: "El título es requerido", Path: "title"})
	}
	if strings.TrimSpace(c.PostForm("description")) == "" {
		errs = append(errs, utils.FieldError{Msg: "La descripción es requerida", Path: "description"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		url, saveErr := utils.SaveImage(c, file, "services", "service")
		if saveErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, saveErr.Error())
			return
		}
		imageURL = url
	}

	service := models.Service{
		Title:            c.PostForm("title"),
		Description:      c.PostForm("description"),
		ShortDescription: c.PostForm("short_description"),
		PriceFrom:        formFloat(c, "price_from", 0),
		ImageURL:         imageURL,
		IsActive:         formBool(c, "is_active", true),
		SortOrder:        formInt(c, "sort_order", 0),
		SEOTitle:         c.PostForm("seo_title"),
		SEODescription:   c.PostForm("seo_description"),
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al crear el servicio")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Servicio creado correctamente",
		"serviceId": service.ID,
	})
}

// UpdateService replaces all editable fields. A new image removes the old
// file before the row update commits, so a failed update can leave a
// dangling image_url.
func UpdateService(c *gin.Context) {
	var errs []utils.FieldError
	if strings.TrimSpace(c.PostForm("title")) == "" {
		errs = append(errs, utils.FieldError{Msg: "El título es requerido", Path: "title"})
	}
	if strings.TrimSpace(c.PostForm("description")) == "" {
		errs = append(errs, utils.FieldError{Msg: "La descripción es requerida", Path: "description"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el servicio")
		}
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		utils.RemoveImage(service.ImageURL)
		url, saveErr := utils.SaveImage(c, file, "services", "service")
		if saveErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, saveErr.Error())
			return
		}
		service.ImageURL = url
	}

	service.Title = c.PostForm("title")
	service.Description = c.PostForm("description")
	service.ShortDescription = c.PostForm("short_description")
	service.PriceFrom = formFloat(c, "price_from", service.PriceFrom)
	service.IsActive = formBool(c, "is_active", true)
	service.SortOrder = formInt(c, "sort_order", service.SortOrder)
	service.SEOTitle = c.PostForm("seo_title")
	service.SEODescription = c.PostForm("seo_description")

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar el servicio")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Servicio actualizado correctamente"})
}

// DeleteService removes the row, then best-effort removes its image file.
func DeleteService(c *gin.Context) {
	var service models.Service
	if err := config.DB.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el servicio")
		}
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", service.ID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al eliminar el servicio")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	utils.RemoveImage(service.ImageURL)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Servicio eliminado correctamente"})
}
