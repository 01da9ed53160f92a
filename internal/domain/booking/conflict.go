package booking

import (
	"sort"

	"github.com/google/uuid"
)

// ConflictType describes how a proposed window collides with an existing
// appointment.
type ConflictType string

const (
	ConflictNone ConflictType = "NONE"
	// ConflictOverlap is a partial time intersection.
	ConflictOverlap ConflictType = "OVERLAP"
	// ConflictDuplicate is an identical window on the same professional,
	// surfaced distinctly because the caller message differs.
	ConflictDuplicate ConflictType = "DUPLICATE"
)

// Proposal is a window a caller wants to book on a professional's calendar.
type Proposal struct {
	ProfessionalID uuid.UUID
	Window         Window
}

// ConflictResult explains a single collision. Produced fresh per call and
// never cached: appointments can change between calls.
type ConflictResult struct {
	HasConflict bool         `json:"has_conflict"`
	Type        ConflictType `json:"conflict_type"`
	With        *Appointment `json:"conflicting_appointment,omitempty"`
	Overlap     *Window      `json:"overlap,omitempty"`
}

// DetectConflict returns the primary conflict for the proposal, or a NONE
// result when the window is free. The primary conflict is the first element
// of DetectConflicts.
func DetectConflict(p Proposal, candidates []*Appointment, excludeID uuid.UUID) ConflictResult {
	all := DetectConflicts(p, candidates, excludeID)
	if len(all) == 0 {
		return ConflictResult{Type: ConflictNone}
	}
	return all[0]
}

// DetectConflicts returns every blocking appointment on the same professional
// whose window overlaps the proposal, ordered by intersection duration
// descending with ties broken by ascending appointment id. excludeID drops
// the appointment being edited so a reschedule does not conflict with its
// own prior self; pass uuid.Nil to exclude nothing. Candidates are never
// mutated and the result is deterministic for identical inputs.
func DetectConflicts(p Proposal, candidates []*Appointment, excludeID uuid.UUID) []ConflictResult {
	var hits []ConflictResult
	for _, a := range candidates {
		if a == nil || a.ProfessionalID != p.ProfessionalID {
			continue
		}
		if excludeID != uuid.Nil && a.ID == excludeID {
			continue
		}
		if !a.Status.IsBlocking() {
			continue
		}
		aw, err := a.Window()
		if err != nil {
			continue
		}
		overlap, ok := p.Window.Intersection(aw)
		if !ok {
			continue
		}
		typ := ConflictOverlap
		if aw.Equal(p.Window) {
			typ = ConflictDuplicate
		}
		ov := overlap
		hits = append(hits, ConflictResult{HasConflict: true, Type: typ, With: a, Overlap: &ov})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		di, dj := hits[i].Overlap.Duration(), hits[j].Overlap.Duration()
		if di != dj {
			return di > dj
		}
		return hits[i].With.ID.String() < hits[j].With.ID.String()
	})
	return hits
}
