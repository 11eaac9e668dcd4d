package models

import "time"

// Quote statuses. As with appointments, transitions are unrestricted.
const (
	QuotePending  = "pending"
	QuoteQuoted   = "quoted"
	QuoteAccepted = "accepted"
	QuoteRejected = "rejected"
)

// Quote is a public budget request: client snapshot, vehicle info and the
// requested services serialized as a JSON list.
type Quote struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ClientName   string     `gorm:"not null" json:"client_name"`
	ClientEmail  string     `gorm:"not null" json:"client_email"`
	ClientPhone  string     `json:"client_phone"`
	VehicleMake  string     `json:"vehicle_make"`
	VehicleModel string     `json:"vehicle_model"`
	VehicleYear  int        `json:"vehicle_year"`
	Services     StringList `gorm:"type:text" json:"services"`
	Message      string     `json:"message"`
	Status       string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	QuoteAmount  float64    `gorm:"type:decimal(10,2)" json:"quote_amount"`
	AdminNotes   string     `json:"admin_notes"`
	ValidUntil   string     `json:"valid_until"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidQuoteStatus(s string) bool {
	switch s {
	case QuotePending, QuoteQuoted, QuoteAccepted, QuoteRejected:
		return true
	}
	return false
}
