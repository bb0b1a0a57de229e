package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Availability resolution constants
const (
	// MinSelectableDateWindowDays сколько дней вперед просматривается
	// при поиске ближайшей доступной даты
	MinSelectableDateWindowDays = 30
)

// Business validation constants
const (
	MaxNoteLength    = 500
	MaxCommentLength = 1000
	MaxTitleLength   = 200
)
