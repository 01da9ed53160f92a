package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByProfessional(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]*Appointment, error)
	ListByContact(ctx context.Context, contactID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	// ListCandidatesInRange returns appointments on the professional's
	// calendar that intersect the window, excluding freed statuses per
	// ExcludedStatusesForConflictCheck. Unrecognized statuses are kept so
	// the caller can flag them.
	ListCandidatesInRange(ctx context.Context, professionalID uuid.UUID, w Window) ([]*Appointment, error)
}
