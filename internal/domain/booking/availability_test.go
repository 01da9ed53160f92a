package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func apptAt(profID uuid.UUID, hour int, status Status) *Appointment {
	return &Appointment{
		ID:              uuid.New(),
		ProfessionalID:  profID,
		ScheduledAt:     time.Date(2025, 1, 15, hour, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Status:          status,
	}
}

func TestSlotFreedBy(t *testing.T) {
	for _, s := range FreedStatuses() {
		if !SlotFreedBy(s) {
			t.Errorf("SlotFreedBy(%q) = false, want true", s)
		}
	}
	for _, s := range BlockingStatuses() {
		if SlotFreedBy(s) {
			t.Errorf("SlotFreedBy(%q) = true, want false", s)
		}
	}
	if SlotFreedBy("unknown_status") {
		t.Error("SlotFreedBy(unknown_status) = true, want false")
	}
}

func TestIsWindowFree_EmptyList(t *testing.T) {
	w := mustWindow(t, 9, 0, 60)
	if !IsWindowFree(w, nil) {
		t.Error("empty appointment list must be vacuously free")
	}
}

func TestIsWindowFree_BlockingOverlap(t *testing.T) {
	prof := uuid.New()
	w := mustWindow(t, 9, 30, 60)
	if IsWindowFree(w, []*Appointment{apptAt(prof, 9, StatusAgendada)}) {
		t.Error("window overlapping an agendada appointment must not be free")
	}
}

func TestIsWindowFree_FreedStatusesDoNotBlock(t *testing.T) {
	prof := uuid.New()
	w := mustWindow(t, 9, 0, 60)
	for _, s := range FreedStatuses() {
		if !IsWindowFree(w, []*Appointment{apptAt(prof, 9, s)}) {
			t.Errorf("status %q must not block the window", s)
		}
	}
}

// An unrecognized status does not block, but it is not freed either; it is
// the caller's job to flag it for review.
func TestIsWindowFree_UnknownStatusIsInert(t *testing.T) {
	prof := uuid.New()
	legacy := apptAt(prof, 9, "importado_legado")
	w := mustWindow(t, 9, 0, 60)
	if !IsWindowFree(w, []*Appointment{legacy}) {
		t.Error("unknown status must not block the window")
	}
	if legacy.Status.IsFreed() {
		t.Error("unknown status must not be reported as freed")
	}
}

func TestIsWindowFree_MalformedDurationSkipped(t *testing.T) {
	prof := uuid.New()
	broken := apptAt(prof, 9, StatusAgendada)
	broken.DurationMinutes = 0
	w := mustWindow(t, 9, 0, 60)
	if !IsWindowFree(w, []*Appointment{broken}) {
		t.Error("zero-duration appointment occupies no time")
	}
}
