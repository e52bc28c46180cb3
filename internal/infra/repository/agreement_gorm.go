package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	domain "github.com/BruksfildServices01/estate-agency/internal/domain/agreement"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type AgreementGormRepository struct {
	db *gorm.DB
}

func NewAgreementGormRepository(db *gorm.DB) *AgreementGormRepository {
	return &AgreementGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AgreementGormRepository) Create(
	ctx context.Context,
	ag *models.Agreement,
) error {
	err := r.db.WithContext(ctx).Create(ag).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// unique index on client_id: the single-open-agreement invariant
		// held at the storage boundary
		return apperr.ErrBusiness(
			apperr.CodeAgreementAlreadyOpen,
			"the client already has an open agreement",
		)
	}
	return err
}

func (r *AgreementGormRepository) Update(
	ctx context.Context,
	ag *models.Agreement,
) error {
	return r.db.WithContext(ctx).Save(ag).Error
}

func (r *AgreementGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Agreement{}, id).Error
}

// --------------------------------------------------
// Payment cascade
// --------------------------------------------------

// CompletePayment applies the three payment effects in one transaction
// so a failure partway leaves no sold property with live meetings or a
// dangling agreement row.
func (r *AgreementGormRepository) CompletePayment(
	ctx context.Context,
	ag *models.Agreement,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.RealEstate{}).
			Where("id = ?", ag.RealEstateID).
			Update("available", false).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Agreement{}, ag.ID).Error; err != nil {
			return err
		}

		return tx.
			Where("real_estate_id = ?", ag.RealEstateID).
			Delete(&models.Meeting{}).Error
	})
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AgreementGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Agreement, error) {

	var ag models.Agreement
	err := r.db.WithContext(ctx).First(&ag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ag, nil
}

func (r *AgreementGormRepository) FindByClientID(
	ctx context.Context,
	clientID uint,
) (*models.Agreement, error) {

	var ag models.Agreement
	err := r.db.WithContext(ctx).
		Preload("RealEstate").
		Where("client_id = ?", clientID).
		First(&ag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ag, nil
}

func (r *AgreementGormRepository) FindByRealEstateID(
	ctx context.Context,
	realEstateID uint,
) (*models.Agreement, error) {

	var ag models.Agreement
	err := r.db.WithContext(ctx).
		Where("real_estate_id = ?", realEstateID).
		First(&ag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ag, nil
}

// Compile-time check
var _ domain.Repository = (*AgreementGormRepository)(nil)
