package service

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	"github.com/BruksfildServices01/estate-agency/internal/audit"
	domain "github.com/BruksfildServices01/estate-agency/internal/domain/realestate"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

// RealEstateService owns listings: creation, availability and ownership
// queries. Only the owner-existence check crosses into client territory,
// through the narrow ExistenceChecker capability.
type RealEstateService struct {
	repo    domain.Repository
	clients ExistenceChecker
	audit   *audit.Dispatcher
}

func NewRealEstateService(
	repo domain.Repository,
	clients ExistenceChecker,
	audit *audit.Dispatcher,
) *RealEstateService {
	return &RealEstateService{
		repo:    repo,
		clients: clients,
		audit:   audit,
	}
}

// ======================================================
// WRITE
// ======================================================

// Create persists a new listing for ownerID. Listings always start
// available, whatever the caller put in the flag.
func (s *RealEstateService) Create(ctx context.Context, re *models.RealEstate, ownerID uint) error {
	if err := validateRealEstate(re); err != nil {
		return err
	}
	if err := assertExists(ctx, s.clients, "Client", ownerID); err != nil {
		return err
	}

	re.SellerID = ownerID
	re.Available = true

	if err := s.repo.Create(ctx, re); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ClientID: &ownerID,
		Action:   "real_estate_listed",
		Entity:   "real_estate",
		EntityID: &re.ID,
	})

	return nil
}

// Update persists in-place changes; the payment cascade uses it to flip
// availability, so there is no field validation beyond existence.
func (s *RealEstateService) Update(ctx context.Context, re *models.RealEstate) error {
	if err := assertExists(ctx, s.repo, "Real estate", re.ID); err != nil {
		return err
	}
	return s.repo.Update(ctx, re)
}

func (s *RealEstateService) DeleteByID(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}

// ======================================================
// READ
// ======================================================

func (s *RealEstateService) GetByID(ctx context.Context, id uint) (*models.RealEstate, error) {
	re, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if re == nil {
		return nil, apperr.NotFoundByID("Real estate", id)
	}
	return re, nil
}

func (s *RealEstateService) GetAllBySeller(ctx context.Context, seller *models.Client) ([]models.RealEstate, error) {
	return s.repo.FindAllBySeller(ctx, seller.ID)
}

func (s *RealEstateService) GetAllByType(ctx context.Context, t domain.Type) ([]models.RealEstate, error) {
	return s.repo.FindAllByType(ctx, t)
}

func (s *RealEstateService) GetAll(ctx context.Context) ([]models.RealEstate, error) {
	return s.repo.FindAll(ctx)
}

func (s *RealEstateService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func validateRealEstate(re *models.RealEstate) error {
	if re == nil {
		return apperr.Validation("real estate", "must not be null")
	}
	if !domain.Type(re.Type).IsValid() {
		return apperr.Validation("real estate type", "must be APARTMENT or BUILDING")
	}
	if re.Price < 0 {
		return apperr.Validation("price", "must not be negative")
	}
	return nil
}
