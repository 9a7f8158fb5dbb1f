package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя (из заголовка X-User-ID)
	VenueID   int64     // ID площадки
	GroupID   int64     // ID группы-владельца
	Title     string    // Название мероприятия
	StartTime time.Time // Начало интервала
	EndTime   time.Time // Конец интервала
	Notes     *string   // Дополнительные заметки (опционально)

	// Override - создать бронирование несмотря на конфликты ("create anyway")
	Override bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	VenueID      int64
	GroupID      int64
	GroupName    string
	Title        string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	AllowOverlap bool
	CreatedBy    int64
	Notes        *string

	// Бронирования, с которыми новое пересекается (только при override)
	OverriddenConflicts []*domain.Booking

	CreatedAt time.Time
	UpdatedAt time.Time
}
