package client

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/models"
)

// Repository is the persistence contract for clients. Find methods
// return (nil, nil) when no row matches.
type Repository interface {
	Create(ctx context.Context, client *models.Client) error

	FindByID(ctx context.Context, id uint) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	FindByPhoneNumber(ctx context.Context, phone string) (*models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)

	Update(ctx context.Context, client *models.Client) error
	DeleteByID(ctx context.Context, id uint) error

	ExistsByID(ctx context.Context, id uint) (bool, error)
}
