package agreement

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type Repository interface {
	Create(ctx context.Context, ag *models.Agreement) error

	FindByID(ctx context.Context, id uint) (*models.Agreement, error)
	FindByClientID(ctx context.Context, clientID uint) (*models.Agreement, error)
	FindByRealEstateID(ctx context.Context, realEstateID uint) (*models.Agreement, error)

	Update(ctx context.Context, ag *models.Agreement) error
	DeleteByID(ctx context.Context, id uint) error

	// CompletePayment runs the payment cascade in one transaction:
	// the property is marked unavailable, the agreement row is removed,
	// and every meeting at that property is retracted. All three effects
	// commit together or not at all.
	CompletePayment(ctx context.Context, ag *models.Agreement) error
}
