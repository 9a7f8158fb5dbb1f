package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrVenueInactive возвращается, когда площадка выведена из бронирования
	ErrVenueInactive = errors.New("create_booking: venue is not active")

	// ErrGroupNotFound возвращается, когда группа-владелец не найдена
	ErrGroupNotFound = errors.New("create_booking: group not found")

	// ErrMultiDayRequest возвращается, когда интервал пересекает полночь площадки
	ErrMultiDayRequest = errors.New("create_booking: booking spans more than one calendar day")

	// ErrBookingInPast возвращается при попытке забронировать уже начавшийся интервал
	ErrBookingInPast = errors.New("create_booking: booking starts in the past")

	// ErrBookingConflict возвращается (через ConflictError), когда интервал занят
	ErrBookingConflict = errors.New("create_booking: booking conflicts with existing bookings")

	// ErrDataUnavailable возвращается, когда не удалось получить бронирования площадки
	ErrDataUnavailable = errors.New("create_booking: bookings data unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError возвращается, когда запрошенный интервал пересекается с бронированиями,
// а override не запрошен. Result содержит конфликты и альтернативные слоты
type ConflictError struct {
	Result *domain.ConflictResult
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d conflicting booking(s), %d suggestion(s)",
		ErrBookingConflict, len(e.Result.Conflicts), len(e.Result.SuggestedSlots))
}

func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
