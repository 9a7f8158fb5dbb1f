package conflicts

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном запросе (start >= end, нет площадки)
	ErrInvalidInput = errors.New("conflicts: invalid input data")

	// ErrInvalidWindow возвращается при некорректном рабочем окне (start >= end)
	ErrInvalidWindow = errors.New("conflicts: invalid working-hours window")

	// ErrMultiDayRequest возвращается, когда запрос пересекает границу календарного дня
	ErrMultiDayRequest = errors.New("conflicts: request spans more than one calendar day")

	// ErrInvalidTimezone возвращается, когда часовой пояс площадки не распознан
	ErrInvalidTimezone = errors.New("conflicts: invalid venue timezone")
)
