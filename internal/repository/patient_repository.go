package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-records-server/internal/models"
)

type patientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a PatientRepository backed by the given
// database handle.
func NewPatientRepository(db *gorm.DB) PatientRepository {
	return &patientRepository{db: db}
}

// Save inserts the patient when it has no identity yet, otherwise updates
// the row with that identity. Updating a missing row returns ErrNotFound.
func (r *patientRepository) Save(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	if patient.ID == 0 {
		if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
			return nil, fmt.Errorf("create patient: %w", err)
		}
		return patient, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", patient.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check patient exists: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	if err := r.db.WithContext(ctx).Save(patient).Error; err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return patient, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find patient by id: %w", err)
	}
	return &patient, nil
}

// FindByName matches the name exactly, case-sensitively, and returns the
// lowest-id row when duplicates exist.
func (r *patientRepository) FindByName(ctx context.Context, name string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find patient by name: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]*models.Patient, error) {
	var patients []*models.Patient
	if err := r.db.WithContext(ctx).Order("id").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("find all patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Patient{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete patient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
