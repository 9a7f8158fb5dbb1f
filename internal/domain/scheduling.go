package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// SchedulingPolicy holds the working-hours window and suggestion limits applied
// to every venue. Times are wall-clock in the venue's time zone.
type SchedulingPolicy struct {
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	MaxSuggestions  int
	DefaultLocation *time.Location // Used for venues without a time zone
}

// DefaultSchedulingPolicy returns the policy used when nothing is configured
func DefaultSchedulingPolicy() SchedulingPolicy {
	openTime, closeTime := DefaultWindowBounds()
	return SchedulingPolicy{
		OpenTime:        openTime,
		CloseTime:       closeTime,
		MaxSuggestions:  DefaultMaxSuggestions,
		DefaultLocation: time.UTC,
	}
}
