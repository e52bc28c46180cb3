package service

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	"github.com/BruksfildServices01/estate-agency/internal/audit"
	domain "github.com/BruksfildServices01/estate-agency/internal/domain/meeting"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/validators"
)

// MeetingService owns viewing appointments. Every referenced entity is
// existence-checked before a write, fail-fast, naming whichever is
// missing.
type MeetingService struct {
	repo        domain.Repository
	realEstates ExistenceChecker
	clients     ExistenceChecker
	employees   ExistenceChecker
	audit       *audit.Dispatcher
}

func NewMeetingService(
	repo domain.Repository,
	realEstates ExistenceChecker,
	clients ExistenceChecker,
	employees ExistenceChecker,
	audit *audit.Dispatcher,
) *MeetingService {
	return &MeetingService{
		repo:        repo,
		realEstates: realEstates,
		clients:     clients,
		employees:   employees,
		audit:       audit,
	}
}

// ======================================================
// WRITE
// ======================================================

func (s *MeetingService) Create(
	ctx context.Context,
	m *models.Meeting,
	realEstateID uint,
	buyerID uint,
	employeeID uint,
) error {

	if err := validateMeeting(m); err != nil {
		return err
	}
	if err := assertExists(ctx, s.realEstates, "Real estate", realEstateID); err != nil {
		return err
	}
	if err := assertExists(ctx, s.clients, "Buyer", buyerID); err != nil {
		return err
	}
	if err := assertExists(ctx, s.employees, "Employee", employeeID); err != nil {
		return err
	}

	m.RealEstateID = realEstateID
	m.BuyerID = buyerID
	m.EmployeeID = employeeID

	if err := s.repo.Create(ctx, m); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ClientID: &buyerID,
		Action:   "meeting_scheduled",
		Entity:   "meeting",
		EntityID: &m.ID,
	})

	return nil
}

func (s *MeetingService) Update(
	ctx context.Context,
	m *models.Meeting,
	realEstateID uint,
	buyerID uint,
	employeeID uint,
) error {

	if err := assertExists(ctx, s.repo, "Meeting", m.ID); err != nil {
		return err
	}
	if err := validateMeeting(m); err != nil {
		return err
	}

	m.RealEstateID = realEstateID
	m.BuyerID = buyerID
	m.EmployeeID = employeeID

	return s.repo.Update(ctx, m)
}

func (s *MeetingService) DeleteByID(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}

// ======================================================
// READ
// ======================================================

func (s *MeetingService) GetByID(ctx context.Context, id uint) (*models.Meeting, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperr.NotFoundByID("Meeting", id)
	}
	return m, nil
}

// GetByClient returns every meeting the client is the buyer of. Zero
// meetings is a valid result, not an error.
func (s *MeetingService) GetByClient(ctx context.Context, client *models.Client) ([]models.Meeting, error) {
	return s.repo.FindAllByBuyer(ctx, client.ID)
}

func (s *MeetingService) GetByRealEstate(ctx context.Context, re *models.RealEstate) ([]models.Meeting, error) {
	return s.repo.FindAllByRealEstate(ctx, re.ID)
}

func (s *MeetingService) GetAll(ctx context.Context) ([]models.Meeting, error) {
	return s.repo.FindAll(ctx)
}

func validateMeeting(m *models.Meeting) error {
	if err := validators.Validate("meeting", m, validators.NotNil[models.Meeting]); err != nil {
		return err
	}
	if err := validators.Validate("meeting date", m.MeetingDateTime,
		validators.NotZero, validators.Future); err != nil {
		return err
	}
	if err := validators.Validate("inquiry date", m.InquiryDate,
		validators.NotZero, validators.Past); err != nil {
		return err
	}
	return validators.Validate("meeting status", m.Status,
		validators.NotEmpty, validators.MaxSize(domain.MaxStatusLen))
}
