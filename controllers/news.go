package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"purdetall-backend/config"
	"purdetall-backend/models"
	"purdetall-backend/utils"
)

type newsListItem struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featured_image"`
	Author        string    `json:"author"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetNews lists published news, optionally filtered by category.
func GetNews(c *gin.Context) {
	query := config.DB.Model(&models.News{}).
		Select("id, title, slug, excerpt, featured_image, author, category, created_at").
		Where("is_published = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var items []newsListItem
	if err := query.Order("created_at DESC").
		Limit(queryInt(c, "limit", 10)).
		Offset(queryInt(c, "offset", 0)).
		Scan(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener las noticias")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetNewsCategories returns the distinct categories of published news.
func GetNewsCategories(c *gin.Context) {
	var categories []string
	if err := config.DB.Model(&models.News{}).
		Distinct("category").
		Where("is_published = ? AND category IS NOT NULL AND category <> ''", true).
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener las categorías")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func GetNewsAdmin(c *gin.Context) {
	var news []models.News
	if err := config.DB.Order("created_at DESC").Find(&news).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener las noticias")
		return
	}

	c.JSON(http.StatusOK, news)
}

func GetNewsBySlug(c *gin.Context) {
	var item models.News
	err := config.DB.Where("slug = ? AND is_published = ?", c.Param("slug"), true).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Noticia no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la noticia")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

func GetNewsItemAdmin(c *gin.Context) {
	var item models.News
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Noticia no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la noticia")
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

func CreateNews(c *gin.Context) {
	var errs []utils.FieldError
	if strings.TrimSpace(c.PostForm("title")) == "" {
		errs = append(errs, utils.FieldError{Msg: "El título es requerido", Path: "title"})
	}
	if strings.TrimSpace(c.PostForm("content")) == "" {
		errs = append(errs, utils.FieldError{Msg: "El contenido es requerido", Path: "content"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	slug := utils.Slugify(c.PostForm("title"))

	var existing models.News
	err := config.DB.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Ya existe una noticia con ese título")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al verificar el slug")
		return
	}

	featuredImage := ""
	if file, fileErr := c.FormFile("featured_image"); fileErr == nil {
		url, saveErr := utils.SaveImage(c, file, "news", "news")
		if saveErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, saveErr.Error())
			return
		}
		featuredImage = url
	}

	author := c.PostForm("author")
	if author == "" {
		author = "PurDetall"
	}

	item := models.News{
		Title:          c.PostForm("title"),
		Slug:           slug,
		Content:        c.PostForm("content"),
		Excerpt:        c.PostForm("excerpt"),
		FeaturedImage:  featuredImage,
		IsPublished:    formBool(c, "is_published", false),
		Author:         author,
		Category:       c.PostForm("category"),
		SEOTitle:       c.PostForm("seo_title"),
		SEODescription: c.PostForm("seo_description"),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al crear la noticia")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Noticia creada correctamente",
		"newsId":  item.ID,
		"slug":    slug,
	})
}

func UpdateNews(c *gin.Context) {
	var errs []utils.FieldError
	if strings.TrimSpace(c.PostForm("title")) == "" {
		errs = append(errs, utils.FieldError{Msg: "El título es requerido", Path: "title"})
	}
	if strings.TrimSpace(c.PostForm("content")) == "" {
		errs = append(errs, utils.FieldError{Msg: "El contenido es requerido", Path: "content"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	var item models.News
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Noticia no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la noticia")
		}
		return
	}

	slug := utils.Slugify(c.PostForm("title"))

	var conflicting models.News
	err := config.DB.Where("slug = ? AND id <> ?", slug, item.ID).First(&conflicting).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Ya existe una noticia con ese título")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al verificar el slug")
		return
	}

	if file, fileErr := c.FormFile("featured_image"); fileErr == nil {
		utils.RemoveImage(item.FeaturedImage)
		url, saveErr := utils.SaveImage(c, file, "news", "news")
		if saveErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, saveErr.Error())
			return
		}
		item.FeaturedImage = url
	}

	author := c.PostForm("author")
	if author == "" {
		author = "PurDetall"
	}

	item.Title = c.PostForm("title")
	item.Slug = slug
	item.Content = c.PostForm("content")
	item.Excerpt = c.PostForm("excerpt")
	item.IsPublished = formBool(c, "is_published", false)
	item.Author = author
	item.Category = c.PostForm("category")
	item.SEOTitle = c.PostForm("seo_title")
	item.SEODescription = c.PostForm("seo_description")

	if err := config.DB.Save(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la noticia")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Noticia actualizada correctamente"})
}

func DeleteNews(c *gin.Context) {
	var item models.News
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Noticia no encontrada")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la noticia")
		}
		return
	}

	if err := config.DB.Delete(&models.News{}, "id = ?", item.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al eliminar la noticia")
		return
	}

	utils.RemoveImage(item.FeaturedImage)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Noticia eliminada correctamente"})
}
