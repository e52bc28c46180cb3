package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	domain "github.com/BruksfildServices01/estate-agency/internal/domain/client"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ClientGormRepository) Create(
	ctx context.Context,
	client *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return r.translateDuplicate(ctx, client, err)
	}
	return nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	client *models.Client,
) error {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return r.translateDuplicate(ctx, client, err)
	}
	return nil
}

func (r *ClientGormRepository) DeleteByID(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}

// translateDuplicate surfaces a unique-index violation as the same
// conflict error the service-level guard raises, so the storage boundary
// stays authoritative even when two writers race past the guard.
func (r *ClientGormRepository) translateDuplicate(
	ctx context.Context,
	client *models.Client,
	err error,
) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	var count int64
	if qerr := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("email = ? AND id <> ?", client.Email, client.ID).
		Count(&count).Error; qerr != nil {
		// without the re-query we cannot tell which index fired
		return qerr
	}
	if count > 0 {
		return apperr.ErrBusiness(
			apperr.CodeEmailAlreadyExists,
			"a client with this email address already exists",
		)
	}

	return apperr.ErrBusiness(
		apperr.CodePhoneAlreadyExists,
		"a client with this phone number already exists",
	)
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ClientGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) FindByPhoneNumber(
	ctx context.Context,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone_number = ?", phone).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) FindAll(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) ExistsByID(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
