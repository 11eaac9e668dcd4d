package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"purdetall-backend/config"
	"purdetall-backend/controllers"
	"purdetall-backend/utils"
)

const maxBodyBytes = 10 << 20

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(corsConfig()))
	r.Use(limitBodySize(maxBodyBytes))
	r.Use(rateLimiter().Middleware())
	r.Use(config.PerformanceLogger())

	authRequired := utils.AuthMiddleware()
	adminOnly := utils.RequireAdmin()

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/verify", authRequired, controllers.Verify)
		auth.POST("/change-password", authRequired, controllers.ChangePassword)
	}

	content := r.Group("/api/content")
	{
		content.GET("/config", controllers.GetPublicConfig)
		content.GET("/config/admin", authRequired, adminOnly, controllers.GetAdminConfig)
		content.PUT("/config", authRequired, adminOnly, controllers.UpdateConfigBulk)
		content.PUT("/config/:key", authRequired, adminOnly, controllers.UpdateConfigKey)
	}

	services := r.Group("/api/services")
	{
		services.GET("", controllers.GetServices)
		services.GET("/admin", authRequired, adminOnly, controllers.GetServicesAdmin)
		services.GET("/:id", controllers.GetService)
		services.POST("", authRequired, adminOnly, controllers.CreateService)
		services.PUT("/:id", authRequired, adminOnly, controllers.UpdateService)
		services.DELETE("/:id", authRequired, adminOnly, controllers.DeleteService)
	}

	gallery := r.Group("/api/gallery")
	{
		gallery.GET("", controllers.GetGallery)
		gallery.GET("/featured", controllers.GetFeaturedGallery)
		gallery.GET("/admin", authRequired, adminOnly, controllers.GetGalleryAdmin)
		gallery.POST("", authRequired, adminOnly, controllers.CreateGalleryEntry)
		gallery.PUT("/:id", authRequired, adminOnly, controllers.UpdateGalleryEntry)
		gallery.DELETE("/:id", authRequired, adminOnly, controllers.DeleteGalleryEntry)
	}

	appointments := r.Group("/api/appointments")
	{
		appointments.GET("", authRequired, adminOnly, controllers.GetAppointments)
		appointments.GET("/status/:status", authRequired, adminOnly, controllers.GetAppointmentsByStatus)
		appointments.GET("/available-times/:date", controllers.GetAvailableTimes)
		appointments.POST("", controllers.CreateAppointment)
		appointments.PUT("/:id/status", authRequired, adminOnly, controllers.UpdateAppointmentStatus)
		appointments.PUT("/:id", authRequired, adminOnly, controllers.UpdateAppointment)
		appointments.DELETE("/:id", authRequired, adminOnly, controllers.DeleteAppointment)
	}

	clients := r.Group("/api/clients", authRequired, adminOnly)
	{
		clients.GET("", controllers.GetClients)
		clients.GET("/search/:term", controllers.SearchClients)
		clients.GET("/:id", controllers.GetClient)
		clients.POST("", controllers.CreateClient)
		clients.PUT("/:id", controllers.UpdateClient)
		clients.DELETE("/:id", controllers.DeleteClient)
	}

	quotes := r.Group("/api/quotes")
	{
		quotes.GET("", authRequired, adminOnly, controllers.GetQuotes)
		quotes.GET("/status/:status", authRequired, adminOnly, controllers.GetQuotesByStatus)
		quotes.GET("/:id", authRequired, adminOnly, controllers.GetQuote)
		quotes.POST("", controllers.CreateQuote)
		quotes.PUT("/:id", authRequired, adminOnly, controllers.UpdateQuote)
		quotes.DELETE("/:id", authRequired, adminOnly, controllers.DeleteQuote)
	}

	blog := r.Group("/api/blog")
	{
		blog.GET("", controllers.GetPosts)
		blog.GET("/admin", authRequired, adminOnly, controllers.GetPostsAdmin)
		blog.GET("/admin/:id", authRequired, adminOnly, controllers.GetPostAdmin)
		blog.GET("/:slug", controllers.GetPostBySlug)
		blog.POST("", authRequired, adminOnly, controllers.CreatePost)
		blog.PUT("/:id", authRequired, adminOnly, controllers.UpdatePost)
		blog.DELETE("/:id", authRequired, adminOnly, controllers.DeletePost)
	}

	news := r.Group("/api/news")
	{
		news.GET("", controllers.GetNews)
		news.GET("/categories", controllers.GetNewsCategories)
		news.GET("/admin", authRequired, adminOnly, controllers.GetNewsAdmin)
		news.GET("/admin/:id", authRequired, adminOnly, controllers.GetNewsItemAdmin)
		news.GET("/:slug", controllers.GetNewsBySlug)
		news.POST("", authRequired, adminOnly, controllers.CreateNews)
		news.PUT("/:id", authRequired, adminOnly, controllers.UpdateNews)
		news.DELETE("/:id", authRequired, adminOnly, controllers.DeleteNews)
	}

	contact := r.Group("/api/contact")
	{
		contact.POST("", controllers.SendContactMessage)
		contact.GET("/info", controllers.GetContactInfo)
	}

	r.Static("/uploads", utils.UploadsDir())
	r.NoRoute(serveSite())

	return r
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cfg
}

func rateLimiter() *utils.RateLimiter {
	limit := 100
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT")); err == nil && v > 0 {
		limit = v
	}
	window := 15 * time.Minute
	if v, err := strconv.Atoi(os.Getenv("RATE_WINDOW_MINUTES")); err == nil && v > 0 {
		window = time.Duration(v) * time.Minute
	}
	return utils.NewRateLimiter(limit, window)
}

func limitBodySize(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

// serveSite serves the public bundle and the admin SPA. API misses get a
// JSON 404; /admin/* always falls back to the admin index so the SPA router
// can take over; everything else tries the static file, then the site index.
func serveSite() gin.HandlerFunc {
	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Página no encontrada"})
			return
		}

		if strings.HasPrefix(path, "/admin") {
			c.File(filepath.Join(publicDir, "admin", "index.html"))
			return
		}

		clean := filepath.Join(publicDir, filepath.Clean("/"+path))
		if info, err := os.Stat(clean); err == nil && !info.IsDir() {
			c.File(clean)
			return
		}

		c.File(filepath.Join(publicDir, "index.html"))
	}
}
