package console

import (
	"bufio"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estate-agency/internal/clock"
	infra "github.com/BruksfildServices01/estate-agency/internal/infra/repository"
	"github.com/BruksfildServices01/estate-agency/internal/models"
	"github.com/BruksfildServices01/estate-agency/internal/service"
)

// newSessionConsole wires a console over an in-memory database with the
// given scripted input instead of stdin.
func newSessionConsole(t *testing.T, input string) (*Console, *gorm.DB) {
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

	clients := service.NewClientService(infra.NewClientGormRepository(db), nil)
	realEstates := service.NewRealEstateService(infra.NewRealEstateGormRepository(db), clients, nil)
	employees := service.NewEmployeeService(infra.NewEmployeeGormRepository(db))
	meetings := service.NewMeetingService(
		infra.NewMeetingGormRepository(db),
		realEstates,
		clients,
		employees,
		nil,
	)
	agreements := service.NewAgreementService(
		infra.NewAgreementGormRepository(db),
		realEstates,
		clients,
		nil,
	)

	c := New(clock.DefaultTimezone, clients, realEstates, meetings, agreements, employees)
	c.in = bufio.NewScanner(strings.NewReader(input))
	return c, db
}

func sessionClient(email, phone string) *models.Client {
	return &models.Client{
		FirstName:        "Taras",
		LastName:         "Melnyk",
		Email:            email,
		PhoneNumber:      phone,
		RegistrationDate: time.Now().Add(-time.Hour),
	}
}

// A settings change the service refuses must not stick to the session's
// client, which later prompts and the agreement snapshot sync reuse.
func TestSettingsRefusedChangeRestoresClient(t *testing.T) {
	c, db := newSessionConsole(t, "2\ntaken@example.com\n")
	ctx := context.Background()

	other := sessionClient("taken@example.com", "+380980307420")
	require.NoError(t, c.clients.Create(ctx, other))

	me := sessionClient("me@example.com", "+380980307421")
	require.NoError(t, c.clients.Create(ctx, me))

	c.settings(ctx, me)

	assert.Equal(t, "me@example.com", me.Email)
	assert.Equal(t, "+380980307421", me.PhoneNumber)

	var persisted models.Client
	require.NoError(t, db.First(&persisted, me.ID).Error)
	assert.Equal(t, "me@example.com", persisted.Email)
}

func TestSettingsAppliedChangePersists(t *testing.T) {
	c, db := newSessionConsole(t, "1\n+380980307422\n")
	ctx := context.Background()

	me := sessionClient("me@example.com", "+380980307421")
	require.NoError(t, c.clients.Create(ctx, me))

	c.settings(ctx, me)

	assert.Equal(t, "+380980307422", me.PhoneNumber)

	var persisted models.Client
	require.NoError(t, db.First(&persisted, me.ID).Error)
	assert.Equal(t, "+380980307422", persisted.PhoneNumber)
}
