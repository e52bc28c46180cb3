package employee

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/models"
)

type Repository interface {
	Create(ctx context.Context, emp *models.Employee) error

	FindByID(ctx context.Context, id uint) (*models.Employee, error)
	FindAll(ctx context.Context) ([]models.Employee, error)

	ExistsByID(ctx context.Context, id uint) (bool, error)
}
