package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// CheckAvailability answers "is this window free on this professional's
// calendar?" against a snapshot of stored appointments. Pass excludeID when
// editing so the appointment does not conflict with its own prior self. The
// verdict is only as fresh as the snapshot; the appointment table's exclusion
// constraint closes the race between concurrent checks.
func (s *Service) CheckAvailability(ctx context.Context, professionalID uuid.UUID, startAt time.Time, durationMinutes int, excludeID uuid.UUID) (ConflictResult, error) {
	if professionalID == uuid.Nil {
		return ConflictResult{}, fmt.Errorf("professional_id is required")
	}
	w, err := WindowFrom(startAt, durationMinutes)
	if err != nil {
		return ConflictResult{}, err
	}
	candidates, err := s.repo.ListCandidatesInRange(ctx, professionalID, w)
	if err != nil {
		return ConflictResult{}, err
	}
	s.flagUnknownStatuses(candidates)
	return DetectConflict(Proposal{ProfessionalID: professionalID, Window: w}, candidates, excludeID), nil
}

// Unrecognized statuses do not block a slot, but they are not formally freed
// either, so surface them for human review instead of deciding silently.
func (s *Service) flagUnknownStatuses(appts []*Appointment) {
	for _, a := range appts {
		if a.Status.Category() == CategoryUnknown {
			s.log.Warn().
				Str("appointment_id", a.ID.String()).
				Str("status", string(a.Status)).
				Msg("unrecognized appointment status treated as non-blocking; review required")
		}
	}
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.ProfessionalID == uuid.Nil {
		return fmt.Errorf("professional_id is required")
	}
	if a.ScheduledAt.IsZero() {
		return fmt.Errorf("scheduled_at is required")
	}
	if _, err := a.Window(); err != nil {
		return err
	}
	if a.Status == "" {
		a.Status = StatusAgendada
	}
	if a.Status.Category() == CategoryUnknown {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	res, err := s.CheckAvailability(ctx, a.ProfessionalID, a.ScheduledAt, a.DurationMinutes, uuid.Nil)
	if err != nil {
		return err
	}
	if res.HasConflict {
		return &ConflictError{Result: res}
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Reschedule moves an appointment, checking the new window against every
// blocking appointment except the one being moved.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, startAt time.Time, durationMinutes int) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := s.CheckAvailability(ctx, a.ProfessionalID, startAt, durationMinutes, id)
	if err != nil {
		return nil, err
	}
	if res.HasConflict {
		return nil, &ConflictError{Result: res}
	}
	a.ScheduledAt = startAt
	a.DurationMinutes = durationMinutes
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// CancelledBy identifies who cancelled an appointment; it selects which
// cancellation status is recorded.
type CancelledBy string

const (
	CancelledByClinic  CancelledBy = "clinic"
	CancelledByPatient CancelledBy = "patient"
	CancelledByDentist CancelledBy = "dentist"
)

func (s *Service) Cancel(ctx context.Context, id uuid.UUID, by CancelledBy) (*Appointment, error) {
	var status Status
	switch by {
	case CancelledByClinic, "":
		status = StatusCancelada
	case CancelledByPatient:
		status = StatusCanceladaPaciente
	case CancelledByDentist:
		status = StatusCanceladaDentista
	default:
		return nil, fmt.Errorf("invalid cancelled_by: %s", by)
	}
	return s.setStatus(ctx, id, status)
}

func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.setStatus(ctx, id, StatusConfirmada)
}

func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.setStatus(ctx, id, StatusRealizada)
}

func (s *Service) MarkNoShow(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.setStatus(ctx, id, StatusFaltou)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status Status) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = status
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAgenda(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]*Appointment, error) {
	if !to.After(from) {
		return nil, &ValidationError{Field: "range", Message: "to must be after from"}
	}
	return s.repo.ListByProfessional(ctx, professionalID, from, to)
}

func (s *Service) ListByContact(ctx context.Context, contactID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByContact(ctx, contactID, limit, offset)
}
