package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/estate-agency/internal/domain/meeting"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type MeetingGormRepository struct {
	db *gorm.DB
}

func NewMeetingGormRepository(db *gorm.DB) *MeetingGormRepository {
	return &MeetingGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *MeetingGormRepository) Create(
	ctx context.Context,
	m *models.Meeting,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MeetingGormRepository) Update(
	ctx context.Context,
	m *models.Meeting,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MeetingGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Meeting{}, id).Error
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *MeetingGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Meeting, error) {

	var m models.Meeting
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MeetingGormRepository) FindAllByBuyer(
	ctx context.Context,
	buyerID uint,
) ([]models.Meeting, error) {

	var meetings []models.Meeting
	if err := r.db.WithContext(ctx).
		Preload("RealEstate").
		Preload("Employee").
		Where("buyer_id = ?", buyerID).
		Order("meeting_date_time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *MeetingGormRepository) FindAllByRealEstate(
	ctx context.Context,
	realEstateID uint,
) ([]models.Meeting, error) {

	var meetings []models.Meeting
	if err := r.db.WithContext(ctx).
		Where("real_estate_id = ?", realEstateID).
		Order("meeting_date_time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *MeetingGormRepository) FindAll(
	ctx context.Context,
) ([]models.Meeting, error) {

	var meetings []models.Meeting
	if err := r.db.WithContext(ctx).
		Order("meeting_date_time ASC").
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *MeetingGormRepository) ExistsByID(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Meeting{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*MeetingGormRepository)(nil)
