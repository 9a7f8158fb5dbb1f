package handlers

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// ConflictResultResponse результат проверки конфликтов
type ConflictResultResponse struct {
	HasConflict    bool                    `json:"hasConflict"`
	Conflicts      []ConflictingBooking    `json:"conflicts"`
	SuggestedSlots []SuggestedSlotResponse `json:"suggestedSlots"`
}

// ConflictingBooking бронирование, пересекающееся с запрошенным интервалом
type ConflictingBooking struct {
	ID        int64  `json:"id"`
	GroupName string `json:"groupName"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"` // RFC 3339, UTC
	EndTime   string `json:"endTime"`   // RFC 3339, UTC
}

// SuggestedSlotResponse альтернативный слот
type SuggestedSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// ConflictErrorResponse тело ответа 409 при записи
type ConflictErrorResponse struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Result  ConflictResultResponse `json:"result"`
}

// FromConflictResult конвертирует результат проверки в DTO
func FromConflictResult(result *domain.ConflictResult) ConflictResultResponse {
	resp := ConflictResultResponse{
		Conflicts:      []ConflictingBooking{},
		SuggestedSlots: []SuggestedSlotResponse{},
	}
	if result == nil {
		return resp
	}

	resp.HasConflict = result.HasConflict
	resp.Conflicts = FromConflictingBookings(result.Conflicts)

	for _, slot := range result.SuggestedSlots {
		resp.SuggestedSlots = append(resp.SuggestedSlots, SuggestedSlotResponse{
			StartTime: FormatInstant(slot.StartTime),
			EndTime:   FormatInstant(slot.EndTime),
			Available: slot.Available,
		})
	}

	return resp
}

// FromConflictingBookings конвертирует список пересекающихся бронирований
func FromConflictingBookings(bookings []*domain.Booking) []ConflictingBooking {
	resp := make([]ConflictingBooking, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ConflictingBooking{
			ID:        b.ID,
			GroupName: b.GroupName,
			Title:     b.Title,
			StartTime: FormatInstant(b.StartTime),
			EndTime:   FormatInstant(b.EndTime),
		})
	}
	return resp
}

// RespondConflict отправляет 409 с конфликтами и альтернативами
func RespondConflict(w http.ResponseWriter, message string, result *domain.ConflictResult) {
	RespondJSON(w, http.StatusConflict, ConflictErrorResponse{
		Code:    http.StatusConflict,
		Message: message,
		Result:  FromConflictResult(result),
	})
}

// ParseInstant разбирает момент времени в формате RFC 3339
func ParseInstant(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatInstant форматирует момент времени в RFC 3339 (UTC)
func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
