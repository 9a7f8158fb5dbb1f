package domain

import (
	"fmt"
	"time"
)

// Venue represents a shared physical venue that can be booked
type Venue struct {
	ID       int64
	Name     string
	Timezone string // IANA time zone name, e.g. "Europe/Moscow"
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the venue's time zone. Empty timezone falls back to fallback.
func (v *Venue) Location(fallback *time.Location) (*time.Location, error) {
	if v.Timezone == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		return nil, fmt.Errorf("venue %d: invalid timezone %q: %w", v.ID, v.Timezone, err)
	}
	return loc, nil
}
