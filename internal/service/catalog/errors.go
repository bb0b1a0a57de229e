package catalog

import "errors"

var (
	// ErrCraftsmanNotFound возвращается, когда мастер не найден в каталоге
	ErrCraftsmanNotFound = errors.New("craftsman not found")

	// ErrInvalidInput возвращается при некорректных параметрах фильтра
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog service: internal error")
)
