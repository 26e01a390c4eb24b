package models

import (
	"time"
)

// Consultation holds the report written after an appointment. The unique
// index on AppointmentID keeps it to at most one consultation per
// appointment.
type Consultation struct {
	BaseModel
	ConsultationDate time.Time `json:"consultationDate"`
	Report           string    `gorm:"type:text" json:"report"`
	AppointmentID    uint      `gorm:"uniqueIndex;not null" json:"appointmentId"`

	// Relations
	Appointment Appointment `gorm:"foreignKey:AppointmentID;constraint:OnDelete:RESTRICT" json:"-"`
}
