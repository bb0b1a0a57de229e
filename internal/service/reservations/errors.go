package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда заказ не найден
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrTransitionNotAllowed возвращается, когда действие недопустимо
	// в текущем статусе; запрос на backend при этом не отправляется
	ErrTransitionNotAllowed = errors.New("transition not allowed in current status")

	// ErrNoteRequired возвращается при попытке торга без комментария
	ErrNoteRequired = errors.New("negotiation note is required")

	// ErrInvalidPrice возвращается при некорректной цене предложения
	ErrInvalidPrice = errors.New("invalid offer price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionExpired возвращается, когда backend отверг токен сессии
	ErrSessionExpired = errors.New("session expired")

	// ErrBackendRejected возвращается, когда backend отверг переход;
	// сообщение backend сохраняется в цепочке ошибок
	ErrBackendRejected = errors.New("rejected by backend")

	// ErrBackendUnavailable возвращается при сетевой недоступности backend
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
