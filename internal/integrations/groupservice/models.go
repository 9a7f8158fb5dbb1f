package groupservice

import "fmt"

// Group модель группы из GroupService
type Group struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от GroupService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FallbackName отображаемое имя группы, когда GroupService недоступен
func FallbackName(groupID int64) string {
	return fmt.Sprintf("Group #%d", groupID)
}
