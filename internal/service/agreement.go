package service

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	"github.com/BruksfildServices01/estate-agency/internal/audit"
	"github.com/BruksfildServices01/estate-agency/internal/clock"
	domain "github.com/BruksfildServices01/estate-agency/internal/domain/agreement"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/validators"
)

// RealEstateFinder is the capability the agreement lifecycle needs from
// the real-estate side: resolve an id to a live listing (to freeze its
// price) or fail with not-found.
type RealEstateFinder interface {
	GetByID(ctx context.Context, id uint) (*models.RealEstate, error)
}

// AgreementService drives the purchase lifecycle:
// no-agreement -> unpaid-agreement -> deleted (paid or cancelled).
// A paid sale leaves no agreement row; the property's availability flag
// is the durable record.
type AgreementService struct {
	repo        domain.Repository
	realEstates RealEstateFinder
	clients     ExistenceChecker
	audit       *audit.Dispatcher
}

func NewAgreementService(
	repo domain.Repository,
	realEstates RealEstateFinder,
	clients ExistenceChecker,
	audit *audit.Dispatcher,
) *AgreementService {
	return &AgreementService{
		repo:        repo,
		realEstates: realEstates,
		clients:     clients,
		audit:       audit,
	}
}

// ======================================================
// CREATE
// ======================================================

// Create opens an unpaid agreement binding the client to the property.
// Refused while the client has any open agreement, and while the
// property is under someone else's agreement or already sold.
func (s *AgreementService) Create(
	ctx context.Context,
	ag *models.Agreement,
	realEstateID uint,
	clientID uint,
) error {

	if err := validators.Validate("agreement", ag, validators.NotNil[models.Agreement]); err != nil {
		return err
	}
	if err := assertExists(ctx, s.clients, "Client", clientID); err != nil {
		return err
	}

	re, err := s.realEstates.GetByID(ctx, realEstateID)
	if err != nil {
		return err
	}
	if !re.Available {
		return apperr.ErrBusiness(
			apperr.CodeRealEstateOrdered,
			"this real estate has already been sold",
		)
	}

	open, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	if open != nil {
		return apperr.ErrBusiness(
			apperr.CodeAgreementAlreadyOpen,
			"you cannot have more than one open agreement; pay or cancel the existing one first",
		)
	}

	onProperty, err := s.repo.FindByRealEstateID(ctx, realEstateID)
	if err != nil {
		return err
	}
	if onProperty != nil {
		return apperr.ErrBusiness(
			apperr.CodeRealEstateOrdered,
			"this real estate is already under an open agreement",
		)
	}

	domain.Open(ag, re, clientID, clock.Now())

	if err := s.repo.Create(ctx, ag); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ClientID: &clientID,
		Action:   "agreement_created",
		Entity:   "agreement",
		EntityID: &ag.ID,
	})

	return nil
}

// ======================================================
// PAYMENT
// ======================================================

// Pay settles the client's open agreement: the property is marked
// unavailable, the agreement row is removed and every meeting at that
// property is retracted, all in one transaction.
func (s *AgreementService) Pay(ctx context.Context, clientID uint) error {
	ag, err := s.repo.FindByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	if ag == nil {
		return apperr.NotFound("Agreement")
	}

	if err := s.repo.CompletePayment(ctx, ag); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ClientID: &clientID,
		Action:   "agreement_paid",
		Entity:   "agreement",
		EntityID: &ag.ID,
		Metadata: map[string]any{
			"reference": ag.Reference,
			"amount":    ag.Amount,
		},
	})

	return nil
}

// ======================================================
// UPDATE / CANCEL
// ======================================================

// Update refreshes an open agreement after the client's contact details
// changed; no validation beyond existence.
func (s *AgreementService) Update(ctx context.Context, ag *models.Agreement) error {
	existing, err := s.repo.FindByID(ctx, ag.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFoundByID("Agreement", ag.ID)
	}
	return s.repo.Update(ctx, ag)
}

// DeleteByID cancels an agreement outright.
func (s *AgreementService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "agreement_cancelled",
		Entity:   "agreement",
		EntityID: &id,
	})

	return nil
}

// ======================================================
// READ
// ======================================================

// GetByClientID returns the client's open agreement, or nil when the
// client has none; it doubles as the single-open-agreement guard.
func (s *AgreementService) GetByClientID(ctx context.Context, clientID uint) (*models.Agreement, error) {
	return s.repo.FindByClientID(ctx, clientID)
}

func (s *AgreementService) GetByID(ctx context.Context, id uint) (*models.Agreement, error) {
	ag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ag == nil {
		return nil, apperr.NotFoundByID("Agreement", id)
	}
	return ag, nil
}
