package agreement

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/estate-agency/internal/models"
)

const (
	StatusUnpaid = "unpaid"

	// DefaultDuration is the fixed textual term of every agreement.
	DefaultDuration = "3 months"
)

// ===============================
// Domain Actions
// ===============================

// Open stamps ag as a fresh unpaid agreement between the client and the
// real estate. The amount is frozen to the property's price at this
// instant and is never re-derived.
func Open(ag *models.Agreement, re *models.RealEstate, clientID uint, now time.Time) {
	ag.Reference = uuid.NewString()
	if ag.Date.IsZero() {
		ag.Date = now
	}
	ag.Amount = re.Price
	ag.Duration = DefaultDuration
	ag.Status = StatusUnpaid
	ag.ClientID = clientID
	ag.RealEstateID = re.ID
}
