package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"purdetall-backend/config"
	"purdetall-backend/models"
	"purdetall-backend/utils"
)

type ConfigEntryInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type ConfigBulkInput struct {
	Configs []ConfigEntryInput `json:"configs"`
}

type ConfigValueInput struct {
	Value string `json:"value"`
}

// GetPublicConfig flattens all config rows to a key → value map.
func GetPublicConfig(c *gin.Context) {
	var configs []models.SiteConfig
	if err := config.DB.Order("key").Find(&configs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la configuración")
		return
	}

	flat := make(map[string]string, len(configs))
	for _, cfg := range configs {
		flat[cfg.Key] = cfg.Value
	}

	c.JSON(http.StatusOK, flat)
}

// GetAdminConfig returns the full rows, type and description included.
func GetAdminConfig(c *gin.Context) {
	var configs []models.SiteConfig
	if err := config.DB.Order("key").Find(&configs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener la configuración")
		return
	}

	c.JSON(http.StatusOK, configs)
}

// UpdateConfigBulk updates each key in turn. An absent key silently affects
// zero rows; only failures of the store itself are reported.
func UpdateConfigBulk(c *gin.Context) {
	var input ConfigBulkInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Configs == nil {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Msg: "Los datos de configuración deben ser un array", Path: "configs"},
		})
		return
	}

	for _, entry := range input.Configs {
		if err := config.DB.Model(&models.SiteConfig{}).
			Where("key = ?", entry.Key).
			Update("value", entry.Value).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la configuración")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Configuración actualizada correctamente"})
}

// UpdateConfigKey updates a single key and reports 404 when it is absent.
func UpdateConfigKey(c *gin.Context) {
	var input ConfigValueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}
	if strings.TrimSpace(input.Value) == "" {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Msg: "El valor es requerido", Path: "value"},
		})
		return
	}

	result := config.DB.Model(&models.SiteConfig{}).
		Where("key = ?", c.Param("key")).
		Update("value", input.Value)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la configuración")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Configuración no encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Configuración actualizada correctamente"})
}
