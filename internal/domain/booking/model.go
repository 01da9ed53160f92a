package booking

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointment table. The schedule is stored as a
// start instant plus a duration in minutes; Window derives the half-open
// interval the engine reasons about.
type Appointment struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	ProfessionalID  uuid.UUID  `db:"professional_id" json:"professional_id"`
	ContactID       *uuid.UUID `db:"contact_id" json:"contact_id,omitempty"`
	ContactName     *string    `db:"contact_name" json:"contact_name,omitempty"`
	ScheduledAt     time.Time  `db:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Status          Status     `db:"status" json:"status"`
	Notes           *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// Window returns the time interval this appointment occupies.
func (a *Appointment) Window() (Window, error) {
	return WindowFrom(a.ScheduledAt, a.DurationMinutes)
}
