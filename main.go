package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"purdetall-backend/config"
	"purdetall-backend/models"
	"purdetall-backend/routes"
	"purdetall-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.SiteConfig{},
		&models.Service{},
		&models.GalleryEntry{},
		&models.Client{},
		&models.Appointment{},
		&models.Quote{},
		&models.BlogPost{},
		&models.News{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := config.SeedDefaults(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}

func main() {

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	services.NewReminderService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
