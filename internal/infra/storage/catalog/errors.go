package catalog

import "errors"

var (
	// ErrCraftsmanNotFound возвращается, когда мастер не найден
	ErrCraftsmanNotFound = errors.New("catalog.repository: craftsman not found")

	// ErrCraftNotFound возвращается, когда ремесленная работа не найдена
	ErrCraftNotFound = errors.New("catalog.repository: craft not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
