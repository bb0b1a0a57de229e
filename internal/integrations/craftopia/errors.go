package craftopia

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable возвращается при сетевых ошибках (backend недоступен)
	ErrUnavailable = errors.New("craftopia client: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("craftopia client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе backend
	ErrInvalidResponse = errors.New("craftopia client: invalid response")
)

// APIError типизированная ошибка backend: несет HTTP-статус и сообщение
// из тела ответа, чтобы вызывающий код мог ветвиться по статусу и
// показывать сообщение backend дословно.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("craftopia backend: status %d", e.StatusCode)
	}
	return fmt.Sprintf("craftopia backend: status %d: %s", e.StatusCode, e.Message)
}

// IsStatus сообщает, является ли err ошибкой backend с указанным HTTP-статусом
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// BackendMessage извлекает сообщение backend из ошибки; пустая строка,
// если err не является ошибкой backend или сообщение отсутствует
func BackendMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
