package resolve_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_availability: invalid input data")

	// ErrArtisanNotFound возвращается, когда мастер не найден на backend
	ErrArtisanNotFound = errors.New("resolve_availability: artisan not found")

	// ErrBackendUnavailable возвращается при сетевой недоступности backend
	ErrBackendUnavailable = errors.New("resolve_availability: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_availability: internal error")
)
