package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	infraRepo "github.com/BruksfildServices01/estate-agency/internal/infra/repository"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/service"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a fresh connection to :memory: would be a fresh database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Employee{},
		&models.RealEstate{},
		&models.Meeting{},
		&models.Agreement{},
		&models.AuditLog{},
	))
	return db
}

type services struct {
	db          *gorm.DB
	clients     *service.ClientService
	realEstates *service.RealEstateService
	employees   *service.EmployeeService
	meetings    *service.MeetingService
	agreements  *service.AgreementService
}

func newServices(t *testing.T) *services {
	db := setupTestDB(t)

	clients := service.NewClientService(infraRepo.NewClientGormRepository(db), nil)
	realEstates := service.NewRealEstateService(infraRepo.NewRealEstateGormRepository(db), clients, nil)
	employees := service.NewEmployeeService(infraRepo.NewEmployeeGormRepository(db))
	meetings := service.NewMeetingService(
		infraRepo.NewMeetingGormRepository(db),
		realEstates, clients, employees, nil,
	)
	agreements := service.NewAgreementService(
		infraRepo.NewAgreementGormRepository(db),
		realEstates, clients, nil,
	)

	return &services{
		db:          db,
		clients:     clients,
		realEstates: realEstates,
		employees:   employees,
		meetings:    meetings,
		agreements:  agreements,
	}
}

// ======================================================
// FIXTURES
// ======================================================

func validClient(n int) *models.Client {
	return &models.Client{
		FirstName:        "Taras",
		LastName:         "Melnyk",
		Email:            fmt.Sprintf("taras%02d@example.com", n),
		PhoneNumber:      fmt.Sprintf("+3809803074%02d", n),
		RegistrationDate: time.Now().Add(-24 * time.Hour),
	}
}

func validRealEstate() *models.RealEstate {
	return &models.RealEstate{
		Type:        "APARTMENT",
		Price:       85000,
		Description: "two-room apartment near the river",
		Metrics:     "54 m2",
		Rooms:       2,
		Address: models.Address{
			Country:  "Ukraine",
			Region:   "Kyiv Oblast",
			City:     "Kyiv",
			Street:   "Khreshchatyk",
			Building: "12",
		},
	}
}

func validMeeting() *models.Meeting {
	return &models.Meeting{
		MeetingDateTime: time.Now().Add(48 * time.Hour),
		InquiryDate:     time.Now().Add(-time.Hour),
		Status:          "Pending",
	}
}
