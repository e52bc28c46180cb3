package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estate-agency/internal/domain/realestate"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type RealEstateGormRepository struct {
	db *gorm.DB
}

func NewRealEstateGormRepository(db *gorm.DB) *RealEstateGormRepository {
	return &RealEstateGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *RealEstateGormRepository) Create(
	ctx context.Context,
	re *models.RealEstate,
) error {
	return r.db.WithContext(ctx).Create(re).Error
}

func (r *RealEstateGormRepository) Update(
	ctx context.Context,
	re *models.RealEstate,
) error {
	return r.db.WithContext(ctx).Save(re).Error
}

func (r *RealEstateGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.RealEstate{}, id).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *RealEstateGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.RealEstate, error) {

	var re models.RealEstate
	err := r.db.WithContext(ctx).First(&re, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &re, nil
}

func (r *RealEstateGormRepository) FindAllBySeller(
	ctx context.Context,
	sellerID uint,
) ([]models.RealEstate, error) {

	var res []models.RealEstate
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id ASC").
		Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *RealEstateGormRepository) FindAllByType(
	ctx context.Context,
	t domain.Type,
) ([]models.RealEstate, error) {

	var res []models.RealEstate
	if err := r.db.WithContext(ctx).
		Where("type = ?", string(t)).
		Order("id ASC").
		Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *RealEstateGormRepository) FindAll(
	ctx context.Context,
) ([]models.RealEstate, error) {

	var res []models.RealEstate
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *RealEstateGormRepository) ExistsByID(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.RealEstate{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*RealEstateGormRepository)(nil)
