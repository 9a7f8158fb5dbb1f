package domain

import "time"

// BookingRequest is a proposed booking interval evaluated against a venue's day.
// ExcludeID is set when re-checking an existing booking that is being edited.
type BookingRequest struct {
	VenueID   int64
	StartTime time.Time
	EndTime   time.Time
	ExcludeID *int64
}

// Duration returns the requested interval length
func (r BookingRequest) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// IsExcluded returns true if the booking with the given id must be ignored
func (r BookingRequest) IsExcluded(bookingID int64) bool {
	return r.ExcludeID != nil && *r.ExcludeID == bookingID
}

// TimeWindow is a single calendar day's working-hours bound [Start, End)
// resolved to UTC instants.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Duration returns the window length
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains returns true if [start, end) lies entirely inside the window
func (w TimeWindow) Contains(start, end time.Time) bool {
	return !start.Before(w.Start) && !end.After(w.End)
}

// SuggestedSlot is an alternative interval offered instead of a conflicting request.
// Suggestions are advisory: nothing is reserved until the caller re-submits.
type SuggestedSlot struct {
	StartTime time.Time
	EndTime   time.Time
	Available bool // Always true for returned slots
}

// ConflictResult is the outcome of evaluating a BookingRequest.
type ConflictResult struct {
	HasConflict    bool
	Conflicts      []*Booking      // Overlapping bookings, ascending start time
	SuggestedSlots []SuggestedSlot // At most maxSuggestions alternatives
}

// IsInfeasible returns true when there is a conflict and no alternative exists
func (r *ConflictResult) IsInfeasible() bool {
	return r.HasConflict && len(r.SuggestedSlots) == 0
}
