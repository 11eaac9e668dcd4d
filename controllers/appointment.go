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

// appointmentRow joins the service title and the linked client's current name
// (the snapshot name on the row may have drifted).
type appointmentRow struct {
	models.Appointment
	ServiceTitle *string `json:"service_title"`
	ClientNameDB *string `json:"client_name_db"`
}

type AppointmentInput struct {
	ClientName      string  `json:"client_name"`
	ClientEmail     string  `json:"client_email"`
	ClientPhone     string  `json:"client_phone"`
	ServiceID       *uint   `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	VehicleMake     string  `json:"vehicle_make"`
	VehicleModel    string  `json:"vehicle_model"`
	VehicleYear     int     `json:"vehicle_year"`
	VehicleColor    string  `json:"vehicle_color"`
	AppointmentDate string  `json:"appointment_date"`
	AppointmentTime string  `json:"appointment_time"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
	Price           float64 `json:"price"`
}

type StatusUpdateInput struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func validateAppointmentInput(input AppointmentInput) []utils.FieldError {
	var errs []utils.FieldError
	if strings.TrimSpace(input.ClientName) == "" {
		errs = append(errs, utils.FieldError{Msg: "El nombre es requerido", Path: "client_name"})
	}
	if strings.TrimSpace(input.ClientPhone) == "" {
		errs = append(errs, utils.FieldError{Msg: "El teléfono es requerido", Path: "client_phone"})
	}
	if !utils.ValidateDate(input.AppointmentDate) {
		errs = append(errs, utils.FieldError{Msg: "Fecha válida requerida", Path: "appointment_date"})
	}
	if !utils.ValidateTime(input.AppointmentTime) {
		errs = append(errs, utils.FieldError{Msg: "Hora válida requerida", Path: "appointment_time"})
	}
	return errs
}

func appointmentQuery() *gorm.DB {
	return config.DB.Table("appointments").
		Select("appointments.*, services.title AS service_title, clients.name AS client_name_db").
		Joins("LEFT JOIN services ON appointments.service_id = services.id").
		Joins("LEFT JOIN clients ON appointments.client_id = clients.id")
}

func GetAppointments(c *gin.Context) {
	var rows []appointmentRow
	if err := appointmentQuery().
		Order("appointments.appointment_date DESC, appointments.appointment_time DESC").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener las citas")
		return
	}

	c.JSON(http.StatusOK, rows)
}

func GetAppointmentsByStatus(c *gin.Context) {
	var rows []appointmentRow
	if err := appointmentQuery().
		Where("appointments.status = ?", c.Param("status")).
		Order("appointments.appointment_date ASC, appointments.appointment_time ASC").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener las citas")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CreateAppointment is the public booking endpoint. It checks the slot and
// inserts in two steps; two concurrent requests for the same slot can both
// pass the check.
func CreateAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}
	if errs := validateAppointmentInput(input); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	var existing models.Appointment
	err := config.DB.
		Where("appointment_date = ? AND appointment_time = ? AND status <> ?",
			input.AppointmentDate, input.AppointmentTime, models.AppointmentCancelled).
		First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Esa fecha y hora ya están ocupadas")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al verificar disponibilidad")
		return
	}

	appointment := models.Appointment{
		ClientName:      input.ClientName,
		ClientEmail:     input.ClientEmail,
		ClientPhone:     input.ClientPhone,
		ServiceID:       input.ServiceID,
		ServiceName:     input.ServiceName,
		VehicleMake:     input.VehicleMake,
		VehicleModel:    input.VehicleModel,
		VehicleYear:     input.VehicleYear,
		VehicleColor:    input.VehicleColor,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Notes:           input.Notes,
		Status:          models.AppointmentPending,
	}
	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al crear la cita")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"message":       "Cita solicitada correctamente. Te contactaremos pronto para confirmar.",
		"appointmentId": appointment.ID,
	})
}

// UpdateAppointmentStatus validates enum membership only; any status may
// move to any other.
func UpdateAppointmentStatus(c *gin.Context) {
	var input StatusUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}
	if !models.IsValidAppointmentStatus(input.Status) {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Msg: "Estado inválido", Path: "status"},
		})
		return
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Notes != "" {
		updates["notes"] = input.Notes
	}

	result := config.DB.Model(&models.Appointment{}).
		Where("id = ?", c.Param("id")).
		Updates(updates)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la cita")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cita no encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Estado de cita actualizado correctamente"})
}

// UpdateAppointment is the full admin update, including price and status.
func UpdateAppointment(c *gin.Context) {
	var input AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos de entrada inválidos")
		return
	}
	if errs := validateAppointmentInput(input); len(errs) > 0 {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	result := config.DB.Model(&models.Appointment{}).
		Where("id = ?", c.Param("id")).
		Updates(map[string]interface{}{
			"client_name":      input.ClientName,
			"client_email":     input.ClientEmail,
			"client_phone":     input.ClientPhone,
			"service_id":       input.ServiceID,
			"service_name":     input.ServiceName,
			"vehicle_make":     input.VehicleMake,
			"vehicle_model":    input.VehicleModel,
			"vehicle_year":     input.VehicleYear,
			"vehicle_color":    input.VehicleColor,
			"appointment_date": input.AppointmentDate,
			"appointment_time": input.AppointmentTime,
			"status":           input.Status,
			"notes":            input.Notes,
			"price":            input.Price,
		})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al actualizar la cita")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cita no encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cita actualizada correctamente"})
}

func DeleteAppointment(c *gin.Context) {
	result := config.DB.Delete(&models.Appointment{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al eliminar la cita")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Cita no encontrada")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cita eliminada correctamente"})
}

// GetAvailableTimes returns the fixed hourly slots minus the non-cancelled
// bookings for the given date.
func GetAvailableTimes(c *gin.Context) {
	var booked []string
	if err := config.DB.Model(&models.Appointment{}).
		Where("appointment_date = ? AND status <> ?", c.Param("date"), models.AppointmentCancelled).
		Pluck("appointment_time", &booked).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al verificar disponibilidad")
		return
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	available := make([]string, 0, len(models.WorkingHours))
	for _, slot := range models.WorkingHours {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{"availableTimes": available})
}
