package professional

import (
	"time"

	"github.com/google/uuid"
)

// Professional is a clinician who owns a calendar. Registration holds the
// regional council number (CRO) when known.
type Professional struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Registration *string   `db:"registration" json:"registration,omitempty"`
	Specialty    *string   `db:"specialty" json:"specialty,omitempty"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
