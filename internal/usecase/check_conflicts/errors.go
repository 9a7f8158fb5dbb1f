package check_conflicts

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("check_conflicts: venue not found")

	// ErrVenueInactive возвращается, когда площадка выведена из бронирования
	ErrVenueInactive = errors.New("check_conflicts: venue is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflicts: invalid input data")

	// ErrMultiDayRequest возвращается, когда интервал пересекает полночь площадки
	ErrMultiDayRequest = errors.New("check_conflicts: request spans more than one calendar day")

	// ErrDataUnavailable возвращается, когда не удалось получить бронирования площадки
	// Проверка в этом случае не может считаться пройденной
	ErrDataUnavailable = errors.New("check_conflicts: bookings data unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflicts: internal error")
)
