package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrSubjectRequired возвращается, когда не указан ни каталожный проект,
	// ни собственное название работы
	ErrSubjectRequired = errors.New("create_reservation: either project or custom title is required")

	// ErrAmbiguousSubject возвращается, когда указаны и проект, и собственное название
	ErrAmbiguousSubject = errors.New("create_reservation: project and custom title are mutually exclusive")

	// ErrInvalidDate возвращается, когда дата не проходит проверку расписания;
	// сообщение для формы сохраняется в цепочке ошибок
	ErrInvalidDate = errors.New("create_reservation: invalid date")

	// ErrInvalidDateRange возвращается, когда дата завершения раньше даты начала
	ErrInvalidDateRange = errors.New("create_reservation: delivery date must be after start date")

	// ErrArtisanNotFound возвращается, когда мастер не найден на backend
	ErrArtisanNotFound = errors.New("create_reservation: artisan not found")

	// ErrAccessDenied возвращается, когда заказ пытается создать не заказчик
	ErrAccessDenied = errors.New("create_reservation: access denied")

	// ErrSessionExpired возвращается, когда backend отверг токен сессии
	ErrSessionExpired = errors.New("create_reservation: session expired")

	// ErrBackendRejected возвращается, когда backend отверг заказ;
	// сообщение backend сохраняется в цепочке ошибок
	ErrBackendRejected = errors.New("create_reservation: rejected by backend")

	// ErrBackendUnavailable возвращается при сетевой недоступности backend
	ErrBackendUnavailable = errors.New("create_reservation: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
