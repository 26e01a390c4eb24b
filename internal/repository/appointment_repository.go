package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-records-server/internal/models"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates an AppointmentRepository backed by the
// given database handle.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Save(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if appointment.ID == 0 {
		if err := r.db.WithContext(ctx).Omit("Patient", "Doctor").Create(appointment).Error; err != nil {
			return nil, fmt.Errorf("create appointment: %w", err)
		}
		return appointment, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Appointment{}).Where("id = ?", appointment.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check appointment exists: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	if err := r.db.WithContext(ctx).Omit("Patient", "Doctor").Save(appointment).Error; err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return appointment, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find appointment by id: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]*models.Appointment, error) {
	var appointments []*models.Appointment
	if err := r.db.WithContext(ctx).Order("id").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("find all appointments: %w", err)
	}
	return appointments, nil
}

// FindByDoctor returns the appointments referencing the given doctor,
// computed on demand instead of being carried on the Doctor struct.
func (r *appointmentRepository) FindByDoctor(ctx context.Context, doctorID uint) ([]*models.Appointment, error) {
	var appointments []*models.Appointment
	if err := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("id").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("find appointments by doctor: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
