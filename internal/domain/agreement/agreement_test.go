package agreement_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/estate-agency/internal/domain/agreement"
	"github.com/BruksfildServices01/estate-agency/internal/models"
)

func TestOpen(t *testing.T) {
	re := &models.RealEstate{ID: 7, Price: 120000}
	now := time.Now()

	ag := &models.Agreement{}
	agreement.Open(ag, re, 3, now)

	assert.Equal(t, 120000.0, ag.Amount)
	assert.Equal(t, agreement.DefaultDuration, ag.Duration)
	assert.Equal(t, agreement.StatusUnpaid, ag.Status)
	assert.EqualValues(t, 3, ag.ClientID)
	assert.EqualValues(t, 7, ag.RealEstateID)
	assert.Equal(t, now, ag.Date)

	_, err := uuid.Parse(ag.Reference)
	require.NoError(t, err)
}

func TestOpenKeepsExplicitDate(t *testing.T) {
	date := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ag := &models.Agreement{Date: date}

	agreement.Open(ag, &models.RealEstate{ID: 1, Price: 50}, 2, time.Now())
	assert.Equal(t, date, ag.Date)
}

func TestOpenFreezesPrice(t *testing.T) {
	re := &models.RealEstate{ID: 1, Price: 80000}
	ag := &models.Agreement{}
	agreement.Open(ag, re, 2, time.Now())

	// later price changes must not leak into the agreement
	re.Price = 95000
	assert.Equal(t, 80000.0, ag.Amount)
}
