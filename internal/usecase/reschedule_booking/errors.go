package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не является автором бронирования
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrCannotReschedule возвращается, когда бронирование отменено
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrVenueNotFound возвращается, когда площадка бронирования не найдена
	ErrVenueNotFound = errors.New("reschedule_booking: venue not found")

	// ErrVenueInactive возвращается, когда площадка выведена из бронирования
	ErrVenueInactive = errors.New("reschedule_booking: venue is not active")

	// ErrMultiDayRequest возвращается, когда интервал пересекает полночь площадки
	ErrMultiDayRequest = errors.New("reschedule_booking: booking spans more than one calendar day")

	// ErrBookingInPast возвращается при переносе на уже начавшийся интервал
	ErrBookingInPast = errors.New("reschedule_booking: booking starts in the past")

	// ErrBookingConflict возвращается (через ConflictError), когда новый интервал занят
	ErrBookingConflict = errors.New("reschedule_booking: booking conflicts with existing bookings")

	// ErrDataUnavailable возвращается, когда не удалось получить бронирования площадки
	ErrDataUnavailable = errors.New("reschedule_booking: bookings data unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)

// ConflictError возвращается, когда новый интервал пересекается с другими бронированиями,
// а override не запрошен
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
