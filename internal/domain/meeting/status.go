package meeting

import (
	"time"

	"github.com/BruksfildServices01/estate-agency/internal/models"
)

// Status is free-form text ("Pending", "Confirmed", ...) bounded by the
// column size; MaxStatusLen is what the field validation enforces.
const (
	StatusPending = "Pending"

	MaxStatusLen = 45
)

// ===============================
// Domain Actions
// ===============================

func Reschedule(m *models.Meeting, date time.Time) {
	m.MeetingDateTime = date
}

func Reassign(m *models.Meeting, emp *models.Employee) {
	m.EmployeeID = emp.ID
	m.Employee = *emp
}
