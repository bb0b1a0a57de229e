package reviews

import "errors"

var (
	// ErrReservationNotFound возвращается, когда заказ не найден
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда заказ принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrNotCompleted возвращается, когда заказ еще не завершен
	ErrNotCompleted = errors.New("reservation is not completed")

	// ErrAlreadyReviewed возвращается, когда отзыв на этот заказ уже оставлен
	ErrAlreadyReviewed = errors.New("reservation already reviewed")

	// ErrInvalidRating возвращается при оценке вне диапазона 1-5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrCommentRequired возвращается при пустом тексте отзыва
	ErrCommentRequired = errors.New("review comment is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionExpired возвращается, когда backend отверг токен сессии
	ErrSessionExpired = errors.New("session expired")

	// ErrBackendRejected возвращается, когда backend отверг запрос;
	// сообщение backend сохраняется в цепочке ошибок
	ErrBackendRejected = errors.New("rejected by backend")

	// ErrBackendUnavailable возвращается при сетевой недоступности backend
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews service: internal error")
)
