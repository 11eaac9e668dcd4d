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

type LoginInput struct {
	Username string `json:"username"` // accepts username or email
	Password string `json:"password"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}

	var errs []utils.FieldError
	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, utils.FieldError{Msg: "El nombre de usuario es requerido", Path: "username"})
	}
	if input.Password == "" {
		errs = append(errs, utils.FieldError{Msg: "La contraseña es requerida", Path: "password"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	identifier := strings.TrimSpace(input.Username)

	var user models.User
	result := config.DB.Where("username = ? OR email = ?", identifier, identifier).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Credenciales inválidas")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error en la base de datos")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al generar el token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Verify returns the identity decoded by the auth middleware.
func Verify(c *gin.Context) {
	userID, _ := c.Get("userId")
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       userID,
			"username": username,
			"role":     role,
		},
	})
}

func ChangePassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}

	var errs []utils.FieldError
	if input.CurrentPassword == "" {
		errs = append(errs, utils.FieldError{Msg: "La contraseña actual es requerida", Path: "currentPassword"})
	}
	if len(input.NewPassword) < 6 {
		errs = append(errs, utils.FieldError{Msg: "La nueva contraseña debe tener al menos 6 caracteres", Path: "newPassword"})
	}
	if len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Token inválido o expirado")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error en la base de datos")
		return
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Contraseña actual incorrecta")
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la contraseña")
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la contraseña")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contraseña actualizada correctamente"})
}
