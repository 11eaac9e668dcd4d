package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"purdetall-backend/config"
	"purdetall-backend/models"
	"purdetall-backend/services"
	"purdetall-backend/utils"
)

// Mail dispatches contact-form notifications. Package-level so tests can
// substitute a stub.
var Mail services.Mailer = services.SMTPMailer{}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

var contactInfoKeys = []string{
	"contact_phone", "contact_email", "contact_address",
	"whatsapp_number", "whatsapp_message", "business_hours",
	"facebook_url", "instagram_url", "youtube_url",
}

// SendContactMessage composes a notification for the configured contact
// address and dispatches it synchronously. Dispatch failure is a 500 and is
// never retried.
func SendContactMessage(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}

	var errs []utils.FieldError
	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, utils.FieldError{Msg: "El nombre es requerido", Path: "name"})
	}
	if !utils.ValidateEmail(input.Email) {
		errs = append(errs, utils.FieldError{Msg: "Email válido requerido", Path: "email"})
	}
	if strings.TrimSpace(input.Message) == "" {
		errs = append(errs, utils.FieldError{Msg: "El mensaje es requerido", Path: "message"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	contactEmail := "info@purdetall.es"
	var cfg models.SiteConfig
	if err := config.DB.Where("key = ?", "contact_email").First(&cfg).Error; err == nil && cfg.Value != "" {
		contactEmail = cfg.Value
	}

	subject := input.Subject
	if subject == "" {
		subject = "Sin asunto"
	}

	var body strings.Builder
	body.WriteString("<h2>Nuevo mensaje de contacto - PurDetall</h2>")
	fmt.Fprintf(&body, "<p><strong>Nombre:</strong> %s</p>", input.Name)
	fmt.Fprintf(&body, "<p><strong>Email:</strong> %s</p>", input.Email)
	if input.Phone != "" {
		fmt.Fprintf(&body, "<p><strong>Teléfono:</strong> %s</p>", input.Phone)
	}
	fmt.Fprintf(&body, "<p><strong>Asunto:</strong> %s</p>", subject)
	body.WriteString("<h3>Mensaje:</h3>")
	fmt.Fprintf(&body, "<p>%s</p>", strings.ReplaceAll(input.Message, "\n", "<br>"))
	body.WriteString("<hr><small>Este mensaje fue enviado desde el formulario de contacto de PurDetall</small>")

	if err := Mail.Send(contactEmail, "Nuevo mensaje de contacto: "+subject, body.String()); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al enviar el mensaje")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Mensaje enviado correctamente. Te contactaremos pronto.",
	})
}

// GetContactInfo returns the public contact subset of the site config.
func GetContactInfo(c *gin.Context) {
	var configs []models.SiteConfig
	if err := config.DB.Where("key IN ?", contactInfoKeys).Find(&configs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la información de contacto")
		return
	}

	info := make(map[string]string, len(configs))
	for _, cfg := range configs {
		info[cfg.Key] = cfg.Value
	}

	c.JSON(http.StatusOK, info)
}
