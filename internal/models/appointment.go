package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusDone      AppointmentStatus = "DONE"
)

// Appointment represents a scheduled visit between a patient and a doctor.
// Status is stored verbatim; no transition logic exists in this release.
type Appointment struct {
	BaseModel
	DateTime  time.Time         `json:"dateTime"`
	Status    AppointmentStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	PatientID uint              `gorm:"index;not null" json:"patientId"`
	DoctorID  uint              `gorm:"index;not null" json:"doctorId"`

	// Relations
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:RESTRICT" json:"-"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:RESTRICT" json:"-"`
}
