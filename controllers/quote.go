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

type QuoteInput struct {
	ClientName   string   `json:"client_name"`
	ClientEmail  string   `json:"client_email"`
	ClientPhone  string   `json:"client_phone"`
	VehicleMake  string   `json:"vehicle_make"`
	VehicleModel string   `json:"vehicle_model"`
	VehicleYear  int      `json:"vehicle_year"`
	Services     []string `json:"services"`
	Message      string   `json:"message"`
}

type QuoteUpdateInput struct {
	Status      string  `json:"status"`
	QuoteAmount float64 `json:"quote_amount"`
	AdminNotes  string  `json:"admin_notes"`
	ValidUntil  string  `json:"valid_until"`
}

func GetQuotes(c *gin.Context) {
	var quotes []models.Quote
	if err := config.DB.Order("created_at DESC").Find(&quotes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener los presupuestos")
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func GetQuotesByStatus(c *gin.Context) {
	var quotes []models.Quote
	if err := config.DB.Where("status = ?", c.Param("status")).
		Order("created_at DESC").
		Find(&quotes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener los presupuestos")
		return
	}

	c.JSON(http.StatusOK, quotes)
}

func GetQuote(c *gin.Context) {
	var quote models.Quote
	if err := config.DB.First(&quote, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Presupuesto no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el presupuesto")
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}

// CreateQuote is the public budget-request endpoint; it requires at least
// one selected service.
func CreateQuote(c *gin.Context) {
	var input QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}

	var errs []utils.FieldError
	if strings.TrimSpace(input.ClientName) == "" {
		errs = append(errs, utils.FieldError{Msg: "El nombre es requerido", Path: "client_name"})
	}
	if !utils.ValidateEmail(input.ClientEmail) {
		errs = append(errs, utils.FieldError{Msg: "Email válido requerido", Path: "client_email"})
	}
	if len(input.Services) == 0 {
		errs = append(errs, utils.FieldError{Msg: "Debe seleccionar al menos un servicio", Path: "services"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	quote := models.Quote{
		ClientName:   input.ClientName,
		ClientEmail:  input.ClientEmail,
		ClientPhone:  input.ClientPhone,
		VehicleMake:  input.VehicleMake,
		VehicleModel: input.VehicleModel,
		VehicleYear:  input.VehicleYear,
		Services:     models.StringList(input.Services),
		Message:      input.Message,
		Status:       models.QuotePending,
	}
	if err := config.DB.Create(&quote).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al crear el presupuesto")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Solicitud de presupuesto enviada correctamente. Te contactaremos pronto.",
		"quoteId": quote.ID,
	})
}

// UpdateQuote sets the status (enum-checked, transitions unrestricted) and
// the admin-side quote fields.
func UpdateQuote(c *gin.Context) {
	var input QuoteUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}
	if !models.IsValidQuoteStatus(input.Status) {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Msg: "Estado inválido", Path: "status"},
		})
		return
	}

	result := config.DB.Model(&models.Quote{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"status":       input.Status,
			"quote_amount": input.QuoteAmount,
			"admin_notes":  input.AdminNotes,
			"valid_until":  input.ValidUntil,
		})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar el presupuesto")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Presupuesto no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Presupuesto actualizado correctamente"})
}

func DeleteQuote(c *gin.Context) {
	result := config.DB.Delete(&models.Quote{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al eliminar el presupuesto")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Presupuesto no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Presupuesto eliminado correctamente"})
}
