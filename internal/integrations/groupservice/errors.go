package groupservice

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не существует
	ErrGroupNotFound = errors.New("groupservice client: group not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("groupservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("groupservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// GroupService недоступен, вместо имени группы используется заглушка
	ErrServiceDegraded = errors.New("groupservice unavailable: graceful degradation applied")
)
