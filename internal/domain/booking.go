package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a venue booking owned by a group.
// StartTime and EndTime are UTC instants, StartTime < EndTime.
type Booking struct {
	ID        int64
	VenueID   int64
	GroupID   int64
	GroupName string // Denormalized display name of the owning group
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	// AllowOverlap is set when the booking was created through the override path
	// ("create anyway") and is therefore exempt from the storage overlap constraint
	AllowOverlap bool
	CreatedBy    int64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its venue
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking interval can be changed
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// Duration returns the booked interval length
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// VenueBookingsFilter фильтр для выборки бронирований площадки
type VenueBookingsFilter struct {
	VenueID         int64     // Обязательный параметр
	From            time.Time // Начало периода (включительно)
	To              time.Time // Конец периода (не включительно)
	ExcludeID       *int64    // Исключить бронирование (редактирование самого себя)
	IncludeInactive bool      // Включать ли отмененные бронирования
}
