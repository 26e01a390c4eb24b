// Package repository contains the persistence access layer: one repository
// per entity, each exposing save, lookup and delete operations against the
// relational store.
package repository

import (
	"context"
	"errors"

	"hospital-records-server/internal/models"
)

// ErrNotFound is returned when an update or delete targets a row that does
// not exist. Find operations report absence as a nil entity instead.
var ErrNotFound = errors.New("record not found")

// PatientRepository defines the persistence operations for patients.
type PatientRepository interface {
	Save(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, id uint) (*models.Patient, error)
	FindByName(ctx context.Context, name string) (*models.Patient, error)
	FindAll(ctx context.Context) ([]*models.Patient, error)
	DeleteByID(ctx context.Context, id uint) error
}

// DoctorRepository defines the persistence operations for doctors.
type DoctorRepository interface {
	Save(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	FindByID(ctx context.Context, id uint) (*models.Doctor, error)
	FindByName(ctx context.Context, name string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]*models.Doctor, error)
	DeleteByID(ctx context.Context, id uint) error
}

// AppointmentRepository defines the persistence operations for appointments.
// FindByDoctor replaces the doctor-side back-reference with an explicit
// derived query.
type AppointmentRepository interface {
	Save(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]*models.Appointment, error)
	FindByDoctor(ctx context.Context, doctorID uint) ([]*models.Appointment, error)
	DeleteByID(ctx context.Context, id uint) error
}

// ConsultationRepository defines the persistence operations for
// consultations. FindByAppointment replaces the appointment-side
// back-reference with an explicit derived query.
type ConsultationRepository interface {
	Save(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error)
	FindByID(ctx context.Context, id uint) (*models.Consultation, error)
	FindAll(ctx context.Context) ([]*models.Consultation, error)
	FindByAppointment(ctx context.Context, appointmentID uint) (*models.Consultation, error)
	DeleteByID(ctx context.Context, id uint) error
}

// UserRepository defines the persistence operations for users. Every read
// loads the user's roles.
type UserRepository interface {
	Save(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	DeleteByID(ctx context.Context, id uint) error
}

// RoleRepository defines the persistence operations for roles.
type RoleRepository interface {
	Save(ctx context.Context, role *models.Role) (*models.Role, error)
	FindByID(ctx context.Context, id uint) (*models.Role, error)
	FindByName(ctx context.Context, roleName string) (*models.Role, error)
	FindAll(ctx context.Context) ([]*models.Role, error)
	DeleteByID(ctx context.Context, id uint) error
}
