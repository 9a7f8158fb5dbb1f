package models

// GetScheduleRequest запрос расписания площадки на день
type GetScheduleRequest struct {
	VenueID int64  `json:"venueId"`
	Date    string `json:"date"` // "2025-10-15", день по времени площадки
}

// ScheduleResponse рабочее окно площадки на день
// В этом окне подбираются альтернативные слоты при конфликте
type ScheduleResponse struct {
	VenueID        int64  `json:"venueId"`
	Name           string `json:"name"`
	Timezone       string `json:"timezone"`
	IsActive       bool   `json:"isActive"`
	Date           string `json:"date"`
	OpenTime       string `json:"openTime"`    // HH:MM, местное время площадки
	CloseTime      string `json:"closeTime"`   // HH:MM, местное время площадки
	WindowStart    string `json:"windowStart"` // RFC 3339, UTC
	WindowEnd      string `json:"windowEnd"`   // RFC 3339, UTC
	MaxSuggestions int    `json:"maxSuggestions"`
}
