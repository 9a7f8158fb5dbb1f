package domain

import "github.com/m04kA/SMC-VenueBookingService/pkg/types"

// Default scheduling configuration values
const (
	DefaultWindowStart          = "09:00"
	DefaultWindowEnd            = "21:00"
	DefaultMaxSuggestions       = 3
	DefaultVenueTimezone        = "UTC"
	MaxTitleLength              = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	DateTimeFormat = "2006-01-02 15:04" // для логов
)

// DefaultWindowBounds returns the default working-hours window bounds
func DefaultWindowBounds() (openTime, closeTime types.TimeString) {
	return types.MustTimeString(DefaultWindowStart), types.MustTimeString(DefaultWindowEnd)
}
