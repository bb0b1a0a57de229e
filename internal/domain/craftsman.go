package domain

import "time"

// Craftsman is a catalog entry for an artisan profile in the demo sandbox.
type Craftsman struct {
	ID        int64
	Name      string
	Craft     string
	City      string
	Rating    float64
	PriceFrom *float64
	Bio       *string
	CreatedAt time.Time
}

// Craft is a catalog entry for a bespoke product type.
type Craft struct {
	ID          int64
	Name        string
	Description string
	BasePrice   float64
	CreatedAt   time.Time
}

// CraftsmenFilter фильтр для выборки мастеров из каталога
type CraftsmenFilter struct {
	Craft     *string  // Фильтр по ремеслу (опционально)
	City      *string  // Фильтр по городу (опционально)
	MinRating *float64 // Минимальный рейтинг (опционально)
	Search    *string  // Поиск по имени (опционально, подстрока без учета регистра)
}
