package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-records-server/internal/models"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a RoleRepository backed by the given database
// handle.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Save(ctx context.Context, role *models.Role) (*models.Role, error) {
	if role.ID == 0 {
		if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
			return nil, fmt.Errorf("create role: %w", err)
		}
		return role, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Role{}).Where("id = ?", role.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check role exists: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	if err := r.db.WithContext(ctx).Save(role).Error; err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return role, nil
}

func (r *roleRepository) FindByID(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return &role, nil
}

func (r *roleRepository) FindByName(ctx context.Context, roleName string) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).Where("role_name = ?", roleName).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	return &role, nil
}

func (r *roleRepository) FindAll(ctx context.Context) ([]*models.Role, error) {
	var roles []*models.Role
	if err := r.db.WithContext(ctx).Order("id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("find all roles: %w", err)
	}
	return roles, nil
}

func (r *roleRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Role{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
