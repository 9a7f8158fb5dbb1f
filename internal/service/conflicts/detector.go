package conflicts

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// DetectConflicts возвращает бронирования, пересекающиеся с запросом
//
// existing должен быть заранее отфильтрован по площадке и календарному дню запроса.
// Бронирование с ID == req.ExcludeID и неактивные бронирования пропускаются.
// Порядок входного списка сохраняется, входной срез не изменяется.
func DetectConflicts(req domain.BookingRequest, existing []*domain.Booking) ([]*domain.Booking, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0)
	for _, booking := range relevantBookings(req, existing) {
		if Overlaps(req.StartTime, req.EndTime, booking.StartTime, booking.EndTime) {
			result = append(result, booking)
		}
	}

	return result, nil
}

// relevantBookings отбрасывает nil, неактивные и исключенные из сравнения бронирования
// Возвращает новый срез, исходный не изменяется
func relevantBookings(req domain.BookingRequest, existing []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(existing))
	for _, booking := range existing {
		if booking == nil || !booking.IsActive() || req.IsExcluded(booking.ID) {
			continue
		}
		result = append(result, booking)
	}
	return result
}
