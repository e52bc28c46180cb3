package realestate

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type Repository interface {
	Create(ctx context.Context, re *models.RealEstate) error

	FindByID(ctx context.Context, id uint) (*models.RealEstate, error)
	FindAllBySeller(ctx context.Context, sellerID uint) ([]models.RealEstate, error)
	FindAllByType(ctx context.Context, t Type) ([]models.RealEstate, error)
	FindAll(ctx context.Context) ([]models.RealEstate, error)

	Update(ctx context.Context, re *models.RealEstate) error
	DeleteByID(ctx context.Context, id uint) error

	ExistsByID(ctx context.Context, id uint) (bool, error)
}
