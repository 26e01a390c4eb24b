package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-records-server/internal/models"
)

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a DoctorRepository backed by the given
// database handle.
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Save(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	if doctor.ID == 0 {
		if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
			return nil, fmt.Errorf("create doctor: %w", err)
		}
		return doctor, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Doctor{}).Where("id = ?", doctor.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check doctor exists: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	if err := r.db.WithContext(ctx).Save(doctor).Error; err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return doctor, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find doctor by id: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByName(ctx context.Context, name string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find doctor by name: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]*models.Doctor, error) {
	var doctors []*models.Doctor
	if err := r.db.WithContext(ctx).Order("id").Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("find all doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Doctor{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete doctor: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
