package booking

import "time"

// Window is a half-open time interval [Start, End). The end instant itself
// is excluded, so an appointment ending at 10:00 never conflicts with one
// starting at 10:00.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow builds a window, rejecting inverted and zero-duration intervals.
func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, &ValidationError{Field: "window", Message: "end must be after start"}
	}
	return Window{Start: start, End: end}, nil
}

// WindowFrom builds a window from a start instant and a duration in minutes.
func WindowFrom(start time.Time, durationMinutes int) (Window, error) {
	if durationMinutes <= 0 {
		return Window{}, &ValidationError{Field: "duration_minutes", Message: "must be a positive integer"}
	}
	return Window{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}, nil
}

// Overlaps reports whether the two half-open intervals intersect.
// Back-to-back windows do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Intersection returns the overlapping sub-window. ok is false when the
// windows do not overlap.
func (w Window) Intersection(other Window) (Window, bool) {
	if !w.Overlaps(other) {
		return Window{}, false
	}
	start := w.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := w.End
	if other.End.Before(end) {
		end = other.End
	}
	return Window{Start: start, End: end}, true
}

// Duration returns the window length.
func (w Window) Duration() time.Duration { return w.End.Sub(w.Start) }

// Equal reports whether both endpoints coincide.
func (w Window) Equal(other Window) bool {
	return w.Start.Equal(other.Start) && w.End.Equal(other.End)
}
