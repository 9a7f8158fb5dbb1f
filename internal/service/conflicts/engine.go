package conflicts

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Evaluate проверяет запрос на конфликты и, если они есть, подбирает альтернативы
//
// Без конфликтов возвращает HasConflict=false и пустые списки, подбор слотов не выполняется.
// Результат носит рекомендательный характер: слоты не резервируются, итоговую проверку
// делает слой хранения при записи.
func Evaluate(
	req domain.BookingRequest,
	existing []*domain.Booking,
	window domain.TimeWindow,
	maxSuggestions int,
) (*domain.ConflictResult, error) {
	conflicting, err := DetectConflicts(req, existing)
	if err != nil {
		return nil, err
	}

	result := &domain.ConflictResult{
		HasConflict:    len(conflicting) > 0,
		Conflicts:      sortByStart(conflicting),
		SuggestedSlots: []domain.SuggestedSlot{},
	}

	if !result.HasConflict {
		return result, nil
	}

	slots, err := SuggestSlots(req, existing, window, maxSuggestions)
	if err != nil {
		return nil, err
	}
	result.SuggestedSlots = slots

	return result, nil
}
