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

type ClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func validateClientInput(input ClientInput) []utils.FieldError {
	var errs []utils.FieldError
	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, utils.FieldError{Msg: "El nombre es requerido", Path: "name"})
	}
	if input.Email != "" && !utils.ValidateEmail(input.Email) {
		errs = append(errs, utils.FieldError{Msg: "Email inválido", Path: "email"})
	}
	return errs
}

func GetClients(c *gin.Context) {
	var clients []models.Client
	if err := config.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener los clientes")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient returns the client row together with its appointment history.
func GetClient(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el cliente")
		}
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Where("client_id = ?", client.ID).
		Order("created_at DESC").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener el historial")
		return
	}

	c.JSON(http.StatusOK, struct {
		models.Client
		Appointments []models.Appointment `json:"appointments"`
	}{client, appointments})
}

func CreateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}
	if errs := validateClientInput(input); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	client := models.Client{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	}
	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al crear el cliente")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Cliente creado correctamente",
		"clientId": client.ID,
	})
}

func UpdateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}
	if errs := validateClientInput(input); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	result := config.DB.Model(&models.Client{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"name":    input.Name,
			"email":   input.Email,
			"phone":   input.Phone,
			"address": input.Address,
			"notes":   input.Notes,
		})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar el cliente")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cliente no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cliente actualizado correctamente"})
}

func DeleteClient(c *gin.Context) {
	result := config.DB.Delete(&models.Client{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al eliminar el cliente")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cliente no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cliente eliminado correctamente"})
}

// SearchClients matches the term against name, email and phone.
func SearchClients(c *gin.Context) {
	term := "%" + c.Param("term") + "%"

	var clients []models.Client
	if err := config.DB.
		Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", term, term, term).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error en la búsqueda")
		return
	}

	c.JSON(http.StatusOK, clients)
}
