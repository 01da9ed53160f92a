package booking

// SlotFreedBy reports whether an appointment in the given status would still
// leave its slot bookable. Today this delegates to IsFreed; it is a separate
// operation because it expresses a different question at call sites, and it
// is the seam where clinic-specific overrides (e.g. treating a no-show as
// blocking until a fee is settled) would go without touching the classifier.
func SlotFreedBy(s Status) bool { return s.IsFreed() }

// IsWindowFree reports whether no appointment in the list both blocks and
// overlaps the window. An empty list is vacuously free. Appointments with a
// malformed duration occupy no time and are skipped.
func IsWindowFree(w Window, existing []*Appointment) bool {
	for _, a := range existing {
		if a == nil || !a.Status.IsBlocking() {
			continue
		}
		aw, err := a.Window()
		if err != nil {
			continue
		}
		if aw.Overlaps(w) {
			return false
		}
	}
	return true
}
