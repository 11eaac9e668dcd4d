package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"purdetall-backend/models"
)

var defaultConfig = []models.SiteConfig{
	{Key: "site_name", Value: "PurDetall", Type: "text", Description: "Nombre del sitio web"},
	{Key: "site_description", Value: "Detailing de vehículos profesional en El Vendrell, Tarragona. Servicios de lavado, encerado, protección y personalización de coches.", Type: "textarea", Description: "Descripción del sitio"},
	{Key: "site_keywords", Value: "detailing, coches, el vendrell, tarragona, lavado, encerado, protección, personalización", Type: "text", Description: "Palabras clave SEO"},
	{Key: "contact_phone", Value: "629780331", Type: "text", Description: "Teléfono de contacto"},
	{Key: "contact_email", Value: "info@purdetall.es", Type: "email", Description: "Email de contacto"},
	{Key: "contact_address", Value: "El Vendrell, Tarragona", Type: "text", Description: "Dirección de contacto"},
	{Key: "whatsapp_number", Value: "629780331", Type: "text", Description: "Número de WhatsApp"},
	{Key: "whatsapp_message", Value: "Hola, me gustaría solicitar información sobre sus servicios de detailing", Type: "textarea", Description: "Mensaje predeterminado de WhatsApp"},
	{Key: "hero_title", Value: "MEJORAR | PROTEGER | MANTENER | PERSONALIZAR", Type: "text", Description: "Título principal del hero"},
	{Key: "hero_subtitle", Value: "PurDetall nació de la pasión por los coches y su presentación. Creado para redefinir cómo los propietarios de vehículos deben mantener la apariencia de sus coches.", Type: "textarea", Description: "Subtítulo del hero"},
	{Key: "about_title", Value: "Sobre PurDetall", Type: "text", Description: "Título de la sección Acerca de"},
	{Key: "about_content", Value: "PurDetall es el especialista más exclusivo en detailing y protección de pintura de vehículos en El Vendrell, Tarragona. Nuestras instalaciones de última generación albergan a algunos de los detailers más hábiles del mundo. Este entorno, junto con nuestra experiencia, nos permite ofrecer a nuestros clientes la más alta calidad posible.", Type: "textarea", Description: "Contenido de la sección Acerca de"},
	{Key: "facebook_url", Value: "", Type: "url", Description: "URL de Facebook"},
	{Key: "instagram_url", Value: "", Type: "url", Description: "URL de Instagram"},
	{Key: "youtube_url", Value: "", Type: "url", Description: "URL de YouTube"},
	{Key: "google_analytics", Value: "", Type: "textarea", Description: "Código de Google Analytics"},
	{Key: "business_hours", Value: "Lunes a Viernes: 9:00 - 18:00\nSábados: 9:00 - 14:00\nDomingos: Cerrado", Type: "textarea", Description: "Horarios de atención"},
}

var defaultServices = []models.Service{
	{
		Title:            "Mejora",
		Description:      "Nuestros servicios exclusivos de detailing ofrecen todo el espectro de tratamientos para la restauración, mejora, preservación y mantenimiento continuo.",
		ShortDescription: "Restauración y mejora completa de tu vehículo",
		PriceFrom:        150.00,
		IsActive:         true,
		SortOrder:        1,
	},
	{
		Title:            "Protección",
		Description:      "Con nuestro diseño personalizado de película de protección de pintura podemos cubrir cualquier superficie pintada, fibra de carbono o acabado liso del coche.",
		ShortDescription: "Protección avanzada para la pintura de tu vehículo",
		PriceFrom:        300.00,
		IsActive:         true,
		SortOrder:        2,
	},
	{
		Title:            "Mantenimiento",
		Description:      "Nuestros lavados de mantenimiento son una parte crucial para mantener la integridad de tu tratamiento.",
		ShortDescription: "Mantenimiento regular para preservar los tratamientos",
		PriceFrom:        50.00,
		IsActive:         true,
		SortOrder:        3,
	},
	{
		Title:            "Personalización",
		Description:      "Nuestros servicios internos de cabina de pintura y acabados interiores permiten posibilidades ilimitadas cuando se trata de personalizar tu coche.",
		ShortDescription: "Personalización completa según tus gustos",
		PriceFrom:        200.00,
		IsActive:         true,
		SortOrder:        4,
	},
}

// SeedDefaults inserts the baseline site config, catalog and admin account.
// Config keys are insert-if-absent; existing values are never overwritten.
func SeedDefaults() error {
	for _, cfg := range defaultConfig {
		entry := cfg
		if err := DB.Where(models.SiteConfig{Key: cfg.Key}).FirstOrCreate(&entry).Error; err != nil {
			return err
		}
	}

	var serviceCount int64
	if err := DB.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		for _, svc := range defaultServices {
			service := svc
			if err := DB.Create(&service).Error; err != nil {
				return err
			}
		}
	}

	return seedAdminUser()
}

// seedAdminUser creates the initial admin account when the users table is
// empty. Credentials come from env, with documented local defaults.
func seedAdminUser() error {
	var userCount int64
	if err := DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@purdetall.es")
	password := envOr("ADMIN_PASSWORD", "purdetall2025")

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Usuario administrador creado (username: %s). Cambiar la contraseña en producción.", username)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
