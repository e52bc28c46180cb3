package service

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	"github.com/BruksfildServices01/estate-agency/internal/audit"
	domain "github.com/BruksfildServices01/estate-agency/internal/domain/client"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/validators"
)

// ClientService owns client identity: registration, uniqueness of email
// and phone, settings changes and lookups.
type ClientService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewClientService(repo domain.Repository, audit *audit.Dispatcher) *ClientService {
	return &ClientService{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// WRITE
// ======================================================

func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	if err := s.checkEmailAndPhoneNumber(ctx, client); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ClientID: &client.ID,
		Action:   "client_registered",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return nil
}

func (s *ClientService) Update(ctx context.Context, client *models.Client) error {
	if err := assertExists(ctx, s.repo, "Client", client.ID); err != nil {
		return err
	}
	if err := validateClient(client); err != nil {
		return err
	}
	if err := s.checkEmailAndPhoneNumber(ctx, client); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ClientID: &client.ID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	return nil
}

// DeleteByID is unconditional and does not cascade into dependent
// agreements or meetings; resolving those first is the caller's job.
func (s *ClientService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	return nil
}

// ======================================================
// READ
// ======================================================

func (s *ClientService) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFoundByID("Client", id)
	}
	return client, nil
}

func (s *ClientService) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	client, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("Client")
	}
	return client, nil
}

func (s *ClientService) GetByPhoneNumber(ctx context.Context, phone string) (*models.Client, error) {
	client, err := s.repo.FindByPhoneNumber(ctx, phone)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperr.NotFound("Client")
	}
	return client, nil
}

func (s *ClientService) GetAll(ctx context.Context) ([]models.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *ClientService) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// ======================================================
// GUARDS
// ======================================================

// checkEmailAndPhoneNumber asserts global uniqueness of both contact
// fields, ignoring the client's own row so settings changes pass.
func (s *ClientService) checkEmailAndPhoneNumber(ctx context.Context, client *models.Client) error {
	byEmail, err := s.repo.FindByEmail(ctx, client.Email)
	if err != nil {
		return err
	}
	if byEmail != nil && byEmail.ID != client.ID {
		return apperr.ErrBusiness(
			apperr.CodeEmailAlreadyExists,
			"a client with this email address already exists",
		)
	}

	byPhone, err := s.repo.FindByPhoneNumber(ctx, client.PhoneNumber)
	if err != nil {
		return err
	}
	if byPhone != nil && byPhone.ID != client.ID {
		return apperr.ErrBusiness(
			apperr.CodePhoneAlreadyExists,
			"a client with this phone number already exists",
		)
	}

	return nil
}

func validateClient(client *models.Client) error {
	if err := validators.Validate("client", client, validators.NotNil[models.Client]); err != nil {
		return err
	}
	if err := validators.Validate("first name", client.FirstName,
		validators.NotEmpty, validators.MaxSize(100)); err != nil {
		return err
	}
	if err := validators.Validate("last name", client.LastName,
		validators.NotEmpty, validators.MaxSize(100)); err != nil {
		return err
	}
	if err := validators.Validate("email", client.Email,
		validators.NotEmpty, validators.MaxSize(100)); err != nil {
		return err
	}
	if err := validators.Validate("phone number", client.PhoneNumber,
		validators.NotEmpty, validators.PhoneNumber); err != nil {
		return err
	}
	return validators.Validate("registration date", client.RegistrationDate,
		validators.NotZero, validators.Past)
}
