package models

import "time"

// Appointment statuses. Transitions between them are unrestricted: the admin
// panel may move an appointment from any status to any other.
const (
	AppointmentPending    = "pending"
	AppointmentConfirmed  = "confirmed"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
)

// WorkingHours are the bookable hourly slots for a day.
var WorkingHours = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

// Appointment stores a client snapshot (name/email/phone copied at creation
// time, never synced back) alongside weak references to the client and
// service rows. Date and time are kept as plain "2006-01-02" / "15:04"
// strings, matching the slot format used by the availability check.
type Appointment struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	ClientID        *uint   `gorm:"index" json:"client_id"`
	ClientName      string  `gorm:"not null" json:"client_name"`
	ClientEmail     string  `json:"client_email"`
	ClientPhone     string  `gorm:"not null" json:"client_phone"`
	ServiceID       *uint   `gorm:"index" json:"service_id"`
	ServiceName     string  `json:"service_name"`
	VehicleMake     string  `json:"vehicle_make"`
	VehicleModel    string  `json:"vehicle_model"`
	VehicleYear     int     `json:"vehicle_year"`
	VehicleColor    string  `json:"vehicle_color"`
	AppointmentDate string  `gorm:"not null;index" json:"appointment_date"`
	AppointmentTime string  `gorm:"not null" json:"appointment_time"`
	Status          string  `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes           string  `json:"notes"`
	Price           float64 `gorm:"type:decimal(10,2)" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}
