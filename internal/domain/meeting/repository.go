package meeting

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Meeting) error

	FindByID(ctx context.Context, id uint) (*models.Meeting, error)
	FindAllByBuyer(ctx context.Context, buyerID uint) ([]models.Meeting, error)
	FindAllByRealEstate(ctx context.Context, realEstateID uint) ([]models.Meeting, error)
	FindAll(ctx context.Context) ([]models.Meeting, error)

	Update(ctx context.Context, m *models.Meeting) error
	DeleteByID(ctx context.Context, id uint) error

	ExistsByID(ctx context.Context, id uint) (bool, error)
}
