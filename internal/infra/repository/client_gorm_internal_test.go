package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

// When the disambiguation re-query itself fails, the storage error must
// surface instead of a guessed phone conflict.
func TestTranslateDuplicateReQueryFailure(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	// clients table deliberately not migrated
	repo := NewClientGormRepository(db)
	terr := repo.translateDuplicate(
		context.Background(),
		&models.Client{Email: "a@example.com"},
		gorm.ErrDuplicatedKey,
	)
	require.Error(t, terr)
	assert.False(t, apperr.IsBusiness(terr, apperr.CodeEmailAlreadyExists))
	assert.False(t, apperr.IsBusiness(terr, apperr.CodePhoneAlreadyExists))
}

func TestTranslateDuplicatePassesThroughOtherErrors(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	repo := NewClientGormRepository(db)
	want := errors.New("connection reset")
	got := repo.translateDuplicate(context.Background(), &models.Client{}, want)
	assert.ErrorIs(t, got, want)
}
