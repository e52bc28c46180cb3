package service

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	domain "github.com/BruksfildServices01/estate-agency/internal/domain/employee"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/validators"
)

// EmployeeService is a read-mostly collaborator: meetings only need to
// know an employee exists. Create is used by seeding.
type EmployeeService struct {
	repo domain.Repository
}

func NewEmployeeService(repo domain.Repository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

func (s *EmployeeService) Create(ctx context.Context, emp *models.Employee) error {
	if err := validators.Validate("first name", emp.FirstName,
		validators.NotEmpty, validators.MaxSize(100)); err != nil {
		return err
	}
	if err := validators.Validate("last name", emp.LastName,
		validators.NotEmpty, validators.MaxSize(100)); err != nil {
		return err
	}
	return s.repo.Create(ctx, emp)
}

func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, apperr.NotFoundByID("Employee", id)
	}
	return emp, nil
}

func (s *EmployeeService) GetAll(ctx context.Context) ([]models.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}
