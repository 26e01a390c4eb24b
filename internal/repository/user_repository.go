package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hospital-records-server/internal/models"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by the given database
// handle.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Save persists the user together with its role associations.
func (r *userRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == 0 {
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check user exists: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Roles").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Roles").Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Preload("Roles").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}
	return users, nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
