package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request модель запроса на перенос бронирования
type Request struct {
	UserID    int64     // ID пользователя (должен быть автором бронирования)
	BookingID int64     // ID переносимого бронирования
	StartTime time.Time // Новое начало
	EndTime   time.Time // Новый конец
	Override  bool      // Перенести несмотря на конфликты
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	Booking             *domain.Booking
	OverriddenConflicts []*domain.Booking // Пересечения, принятые через override
}
