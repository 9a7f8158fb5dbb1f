package conflicts

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// SuggestSlots подбирает альтернативные слоты той же длительности, что и запрос
//
// Кандидаты проверяются в фиксированном порядке:
//  1. до первого бронирования: [window.Start, window.Start+duration)
//  2. между соседними бронированиями: слот начинается ровно в booking[i].End (earliest-fit)
//  3. после последнего бронирования: [last.End, last.End+duration)
//  4. если бронирований нет и запрос лежит внутри окна - начало окна
//
// Каждый промежуток дает не больше одного слота. Слоты вне окна или пересекающиеся
// с любым бронированием отбрасываются. Результат обрезается до maxSuggestions
// (значение <= 0 заменяется на domain.DefaultMaxSuggestions).
// Пустой результат - штатная ситуация: альтернатив на этот день нет.
func SuggestSlots(
	req domain.BookingRequest,
	existing []*domain.Booking,
	window domain.TimeWindow,
	maxSuggestions int,
) ([]domain.SuggestedSlot, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if err := validateWindow(window); err != nil {
		return nil, err
	}
	if maxSuggestions <= 0 {
		maxSuggestions = domain.DefaultMaxSuggestions
	}

	duration := req.Duration()
	result := make([]domain.SuggestedSlot, 0, maxSuggestions)

	// Слот длиннее рабочего окна не поместится никогда
	if duration > window.Duration() {
		return result, nil
	}

	bookings := sortByStart(relevantBookings(req, existing))
	candidates := candidateStarts(bookings, req, window, duration)

	for _, start := range candidates {
		end := start.Add(duration)

		if !window.Contains(start, end) {
			continue
		}
		if overlapsAny(start, end, bookings) {
			continue
		}

		result = append(result, domain.SuggestedSlot{
			StartTime: start,
			EndTime:   end,
			Available: true,
		})
		if len(result) == maxSuggestions {
			break
		}
	}

	return result, nil
}

// candidateStarts возвращает начала слотов-кандидатов в порядке приоритета
// bookings должны быть отсортированы по времени начала
func candidateStarts(
	bookings []*domain.Booking,
	req domain.BookingRequest,
	window domain.TimeWindow,
	duration time.Duration,
) []time.Time {
	if len(bookings) == 0 {
		// Сюда попадаем только при прямом вызове: без бронирований конфликта быть не может
		if window.Contains(req.StartTime, req.EndTime) {
			return []time.Time{window.Start}
		}
		return nil
	}

	starts := make([]time.Time, 0, len(bookings)+1)

	// До первого бронирования
	first := bookings[0]
	if !window.Start.Add(duration).After(first.StartTime) {
		starts = append(starts, window.Start)
	}

	// Между соседними бронированиями
	for i := 0; i < len(bookings)-1; i++ {
		gap := bookings[i+1].StartTime.Sub(bookings[i].EndTime)
		if gap >= duration {
			starts = append(starts, bookings[i].EndTime)
		}
	}

	// После последнего бронирования
	last := bookings[len(bookings)-1]
	if !last.EndTime.Add(duration).After(window.End) {
		starts = append(starts, last.EndTime)
	}

	return starts
}

// sortByStart возвращает копию списка, отсортированную по времени начала
// Сортировка стабильная: при равном начале сохраняется исходный порядок
func sortByStart(bookings []*domain.Booking) []*domain.Booking {
	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	return sorted
}

// overlapsAny проверяет, пересекается ли [start, end) хотя бы с одним бронированием
func overlapsAny(start, end time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if Overlaps(start, end, booking.StartTime, booking.EndTime) {
			return true
		}
	}
	return false
}
