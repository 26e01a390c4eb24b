package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-records-server/internal/models"
)

type consultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository creates a ConsultationRepository backed by the
// given database handle.
func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Save(ctx context.Context, consultation *models.Consultation) (*models.Consultation, error) {
	if consultation.ID == 0 {
		if err := r.db.WithContext(ctx).Omit("Appointment").Create(consultation).Error; err != nil {
			return nil, fmt.Errorf("create consultation: %w", err)
		}
		return consultation, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Consultation{}).Where("id = ?", consultation.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check consultation exists: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	if err := r.db.WithContext(ctx).Omit("Appointment").Save(consultation).Error; err != nil {
		return nil, fmt.Errorf("update consultation: %w", err)
	}
	return consultation, nil
}

func (r *consultationRepository) FindByID(ctx context.Context, id uint) (*models.Consultation, error) {
	var consultation models.Consultation
	if err := r.db.WithContext(ctx).First(&consultation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find consultation by id: %w", err)
	}
	return &consultation, nil
}

func (r *consultationRepository) FindAll(ctx context.Context) ([]*models.Consultation, error) {
	var consultations []*models.Consultation
	if err := r.db.WithContext(ctx).Order("id").Find(&consultations).Error; err != nil {
		return nil, fmt.Errorf("find all consultations: %w", err)
	}
	return consultations, nil
}

// FindByAppointment returns the consultation referencing the given
// appointment, computed on demand instead of being carried on the
// Appointment struct.
func (r *consultationRepository) FindByAppointment(ctx context.Context, appointmentID uint) (*models.Consultation, error) {
	var consultation models.Consultation
	if err := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&consultation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find consultation by appointment: %w", err)
	}
	return &consultation, nil
}

func (r *consultationRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Consultation{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete consultation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
