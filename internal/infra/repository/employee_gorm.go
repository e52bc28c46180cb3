package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estate-agency/internal/domain/employee"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) Create(
	ctx context.Context,
	emp *models.Employee,
) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *EmployeeGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeGormRepository) FindAll(
	ctx context.Context,
) ([]models.Employee, error) {

	var emps []models.Employee
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&emps).Error; err != nil {
		return nil, err
	}
	return emps, nil
}

func (r *EmployeeGormRepository) ExistsByID(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*EmployeeGormRepository)(nil)
