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

// postListItem is the trimmed public listing shape.
type postListItem struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	FeaturedImage string    `json:"featured_image"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetPosts lists published posts, newest first, with limit/offset paging.
func GetPosts(c *gin.Context) {
	var items []postListItem
	if err := config.DB.Model(&models.BlogPost{}).
		Select("id, title, slug, excerpt, featured_image, author, created_at").
		Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(queryInt(c, "limit", 10)).
		Offset(queryInt(c, "offset", 0)).
		Scan(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener los posts")
		return
	}

	c.JSON(http.StatusOK, items)
}

func GetPostsAdmin(c *gin.Context) {
	var posts []models.BlogPost
	if err := config.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener los posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

func GetPostBySlug(c *gin.Context) {
	var post models.BlogPost
	err := config.DB.Where("slug = ? AND is_published = ?", c.Param("slug"), true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Post no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el post")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

func GetPostAdmin(c *gin.Context) {
	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Post no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el post")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost derives the slug from the title and rejects a duplicate.
func CreatePost(c *gin.Context) {
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

	var existing models.BlogPost
	err := config.DB.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Ya existe un post con ese título")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al verificar el slug")
		return
	}

	featuredImage := ""
	if file, fileErr := c.FormFile("featured_image"); fileErr == nil {
		url, saveErr := utils.SaveImage(c, file, "blog", "blog")
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

	post := models.BlogPost{
		Title:          c.PostForm("title"),
		Slug:           slug,
		Content:        c.PostForm("content"),
		Excerpt:        c.PostForm("excerpt"),
		FeaturedImage:  featuredImage,
		IsPublished:    formBool(c, "is_published", false),
		Author:         author,
		Tags:           models.StringList(formStringList(c, "tags")),
		SEOTitle:       c.PostForm("seo_title"),
		SEODescription: c.PostForm("seo_description"),
	}
	if err := config.DB.Create(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al crear el post")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Post creado correctamente",
		"postId":  post.ID,
		"slug":    slug,
	})
}

// UpdatePost regenerates the slug from the new title and rejects it when it
// already belongs to a different post.
func UpdatePost(c *gin.Context) {
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

	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Post no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el post")
		}
		return
	}

	slug := utils.Slugify(c.PostForm("title"))

	var conflicting models.BlogPost
	err := config.DB.Where("slug = ? AND id <> ?", slug, post.ID).First(&conflicting).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Ya existe un post con ese título")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al verificar el slug")
		return
	}

	if file, fileErr := c.FormFile("featured_image"); fileErr == nil {
		utils.RemoveImage(post.FeaturedImage)
		url, saveErr := utils.SaveImage(c, file, "blog", "blog")
		if saveErr != nil {
			utils.RespondWithError(c, http.StatusBadRequest, saveErr.Error())
			return
		}
		post.FeaturedImage = url
	}

	author := c.PostForm("author")
	if author == "" {
		author = "PurDetall"
	}

	post.Title = c.PostForm("title")
	post.Slug = slug
	post.Content = c.PostForm("content")
	post.Excerpt = c.PostForm("excerpt")
	post.IsPublished = formBool(c, "is_published", false)
	post.Author = author
	post.Tags = models.StringList(formStringList(c, "tags"))
	post.SEOTitle = c.PostForm("seo_title")
	post.SEODescription = c.PostForm("seo_description")

	if err := config.DB.Save(&post).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar el post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post actualizado correctamente"})
}

func DeletePost(c *gin.Context) {
	var post models.BlogPost
	if err := config.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Post no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el post")
		}
		return
	}

	if err := config.DB.Delete(&models.BlogPost{}, "id = ?", post.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al eliminar el post")
		return
	}

	utils.RemoveImage(post.FeaturedImage)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post eliminado correctamente"})
}
