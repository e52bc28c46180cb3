package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

func TestClientService_Create(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	client := validClient(1)
	require.NoError(t, s.clients.Create(ctx, client))
	assert.NotZero(t, client.ID)

	got, err := s.clients.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.Email, got.Email)
}

func TestClientService_Create_DuplicateEmail(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	first := validClient(1)
	require.NoError(t, s.clients.Create(ctx, first))

	// same email, different phone
	second := validClient(2)
	second.Email = first.Email

	err := s.clients.Create(ctx, second)
	assert.True(t, apperr.IsBusiness(err, apperr.CodeEmailAlreadyExists))

	var count int64
	require.NoError(t, s.db.Model(&models.Client{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestClientService_Create_DuplicatePhone(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	first := validClient(1)
	require.NoError(t, s.clients.Create(ctx, first))

	second := validClient(2)
	second.PhoneNumber = first.PhoneNumber

	err := s.clients.Create(ctx, second)
	assert.True(t, apperr.IsBusiness(err, apperr.CodePhoneAlreadyExists))
}

func TestClientService_Create_InvalidFields(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	badPhone := validClient(1)
	badPhone.PhoneNumber = "12345"
	assert.True(t, apperr.IsValidation(s.clients.Create(ctx, badPhone)))

	noEmail := validClient(2)
	noEmail.Email = ""
	assert.True(t, apperr.IsValidation(s.clients.Create(ctx, noEmail)))

	futureReg := validClient(3)
	futureReg.RegistrationDate = time.Now().Add(time.Hour)
	assert.True(t, apperr.IsValidation(s.clients.Create(ctx, futureReg)))
}

func TestClientService_Update(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	client := validClient(1)
	require.NoError(t, s.clients.Create(ctx, client))

	// changing only the email must not trip the phone uniqueness check
	// against the client's own row
	client.Email = "new.taras@example.com"
	require.NoError(t, s.clients.Update(ctx, client))

	got, err := s.clients.GetByEmail(ctx, "new.taras@example.com")
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)
}

func TestClientService_Update_UnknownID(t *testing.T) {
	s := newServices(t)

	ghost := validClient(1)
	ghost.ID = 404

	err := s.clients.Update(context.Background(), ghost)
	assert.True(t, apperr.IsNotFound(err))
}

func TestClientService_GetByEmail_NotFound(t *testing.T) {
	s := newServices(t)

	_, err := s.clients.GetByEmail(context.Background(), "nobody@example.com")
	assert.True(t, apperr.IsNotFound(err))
}

func TestClientService_ExistsByID_Idempotent(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	client := validClient(1)
	require.NoError(t, s.clients.Create(ctx, client))

	first, err := s.clients.ExistsByID(ctx, client.ID)
	require.NoError(t, err)
	second, err := s.clients.ExistsByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, first)

	missingFirst, err := s.clients.ExistsByID(ctx, 999)
	require.NoError(t, err)
	missingSecond, err := s.clients.ExistsByID(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, missingFirst, missingSecond)
	assert.False(t, missingFirst)
}

func TestClientService_DeleteByID(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	client := validClient(1)
	require.NoError(t, s.clients.Create(ctx, client))
	require.NoError(t, s.clients.DeleteByID(ctx, client.ID))

	exists, err := s.clients.ExistsByID(ctx, client.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
