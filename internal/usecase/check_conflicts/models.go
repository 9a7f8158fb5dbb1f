package check_conflicts

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request модель запроса на проверку конфликтов
type Request struct {
	VenueID   int64     // ID площадки
	StartTime time.Time // Начало предлагаемого интервала
	EndTime   time.Time // Конец предлагаемого интервала
	ExcludeID *int64    // ID редактируемого бронирования (не сравнивается само с собой)
}

// Response модель ответа с результатом проверки
type Response struct {
	VenueID int64
	Window  domain.TimeWindow // Рабочее окно дня, в котором подбирались альтернативы
	Result  *domain.ConflictResult
}
