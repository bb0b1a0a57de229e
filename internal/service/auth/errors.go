package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается, когда ни один из login-маршрутов
	// не принял учетные данные (все вернули 401)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLoginRejected возвращается, когда backend отверг логин ошибкой,
	// отличной от 401; дальнейшие роли при этом не пробуются
	ErrLoginRejected = errors.New("login rejected by backend")

	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается при сетевой недоступности backend
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
