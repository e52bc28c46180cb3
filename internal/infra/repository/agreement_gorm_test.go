package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	"github.com/BruksfildServices01/estate-agency/internal/infra/repository"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

func setupAgreementDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Employee{},
		&models.RealEstate{},
		&models.Meeting{},
		&models.Agreement{},
	))
	return db
}

func newAgreement(ref string, clientID, realEstateID uint) *models.Agreement {
	return &models.Agreement{
		Reference:    ref,
		Date:         time.Now(),
		Amount:       120000,
		Duration:     "3 months",
		Status:       "unpaid",
		ClientID:     clientID,
		RealEstateID: realEstateID,
	}
}

// The unique index on client_id backs the single-open-agreement
// invariant even for writes that skip the service guard.
func TestAgreementGormRepository_ClientIndexRejectsSecondAgreement(t *testing.T) {
	db := setupAgreementDB(t)
	repo := repository.NewAgreementGormRepository(db)
	ctx := context.Background()

	buyer := newClient("buyer@example.com", "+380980307411")
	require.NoError(t, db.Create(buyer).Error)

	first := &models.RealEstate{Type: "APARTMENT", Price: 120000, Available: true}
	second := &models.RealEstate{Type: "BUILDING", Price: 250000, Available: true}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, repo.Create(ctx, newAgreement("ref-1", buyer.ID, first.ID)))

	err := repo.Create(ctx, newAgreement("ref-2", buyer.ID, second.ID))
	assert.True(t, apperr.IsBusiness(err, apperr.CodeAgreementAlreadyOpen))
}

// A failure inside the payment transaction must leave the property, the
// agreement and its meetings exactly as they were.
func TestAgreementGormRepository_PaymentRollsBackOnFailure(t *testing.T) {
	db := setupAgreementDB(t)
	repo := repository.NewAgreementGormRepository(db)
	ctx := context.Background()

	buyer := newClient("rollback@example.com", "+380980307412")
	require.NoError(t, db.Create(buyer).Error)

	re := &models.RealEstate{Type: "APARTMENT", Price: 90000, Available: true}
	require.NoError(t, db.Create(re).Error)

	ag := newAgreement("ref-3", buyer.ID, re.ID)
	require.NoError(t, repo.Create(ctx, ag))

	require.NoError(t, db.Create(&models.Meeting{
		MeetingDateTime: time.Now().Add(time.Hour),
		InquiryDate:     time.Now().Add(-time.Hour),
		Status:          "Pending",
		BuyerID:         buyer.ID,
		RealEstateID:    re.ID,
	}).Error)

	// the meeting retraction step cannot run without its table
	require.NoError(t, db.Migrator().DropTable(&models.Meeting{}))

	require.Error(t, repo.CompletePayment(ctx, ag))

	var fresh models.RealEstate
	require.NoError(t, db.First(&fresh, re.ID).Error)
	assert.True(t, fresh.Available)

	left, err := repo.FindByClientID(ctx, buyer.ID)
	require.NoError(t, err)
	require.NotNil(t, left)
	assert.Equal(t, ag.ID, left.ID)
}
