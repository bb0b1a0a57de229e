// Package availability реализует разрешение недельного расписания мастера:
// доступность календарной даты, ближайшая доступная дата и человекочитаемая
// сводка расписания. Все функции тотальны: некорректное или пустое расписание
// деградирует к "всегда доступен", а не к ошибке, чтобы мастер без
// настроенных часов не оказался недоступным для бронирования.
package availability

import (
	"strings"
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/types"
)

// Сообщения валидации выбора даты
const (
	msgDateRequired  = "Please select a date"
	msgDateMalformed = "Please enter a valid date"
	msgDateInPast    = "Please select a date from today onwards"
	msgDayNotOffered = "The artisan is not available on this day. Available days: "
)

// Сигнальные строки сводки расписания
const (
	textAllDays = "All days"
	textNoDays  = "No days available"
)

// IsDateAvailable reports whether the given calendar date is bookable under
// the weekly schedule. An empty schedule means the artisan is always
// available. Resolution takes the first slot whose day matches the date's
// weekday (case-insensitive); when the date is today and checkWorkingHours is
// set, the matched window must additionally end strictly after now.
func IsDateAvailable(date time.Time, slots []domain.AvailabilitySlot, checkWorkingHours bool, now time.Time) bool {
	if len(slots) == 0 {
		return true
	}

	// Берется первое совпадение по дню недели; дубликаты дней допустимы
	var matched *domain.AvailabilitySlot
	for i := range slots {
		if slots[i].MatchesDay(date) {
			matched = &slots[i]
			break
		}
	}
	if matched == nil {
		return false
	}

	// Для сегодняшней даты окно должно заканчиваться строго позже
	// текущего времени, иначе день уже закрыт
	if checkWorkingHours && isSameDay(date, now) {
		if matched.EndTime.IsZero() {
			// Окно без времени закрытия трактуется как открытое весь день
			return true
		}
		currentTime := types.NewTimeString(now)
		return matched.EndTime.IsAfter(currentTime)
	}

	return true
}

// MinSelectableDate returns the earliest bookable date within the next
// 30 days, formatted as YYYY-MM-DD. When no day in the window resolves,
// it falls back to today; callers should pair the result with
// AvailableDaysText to detect the no-availability case.
func MinSelectableDate(now time.Time, slots []domain.AvailabilitySlot) string {
	today := startOfDay(now)
	for i := 0; i < domain.MinSelectableDateWindowDays; i++ {
		candidate := today.AddDate(0, 0, i)
		if IsDateAvailable(candidate, slots, true, now) {
			return candidate.Format(domain.DateFormat)
		}
	}
	return today.Format(domain.DateFormat)
}

// AvailableDaysText renders a comma-joined list of distinct weekday names in
// schedule order, optionally annotated with the working window on a 12-hour
// clock. Sentinels: "All days" for an empty schedule, "No days available"
// when no entry resolves to a weekday.
func AvailableDaysText(slots []domain.AvailabilitySlot, includeHours bool) string {
	if len(slots) == 0 {
		return textAllDays
	}

	seen := make(map[string]bool)
	parts := make([]string, 0, len(slots))

	for _, slot := range slots {
		day := slot.CanonicalDay()
		if day == "" || seen[day] {
			continue
		}
		seen[day] = true

		if includeHours && !slot.StartTime.IsZero() && !slot.EndTime.IsZero() {
			day += " (" + slot.StartTime.Format12Hour() + " - " + slot.EndTime.Format12Hour() + ")"
		}
		parts = append(parts, day)
	}

	if len(parts) == 0 {
		return textNoDays
	}
	return strings.Join(parts, ", ")
}

// DateValidation is the outcome of validating a user-selected date.
type DateValidation struct {
	Valid   bool
	Message string
}

// ValidateDateSelection validates a date string from a booking form against
// the schedule: it rejects empty input, malformed dates, past dates and days
// the artisan does not offer.
//
// Замечание: проверка доступности здесь намеренно выполняется без учета
// рабочих часов, поэтому "сегодня после закрытия" проходит валидацию формы
// и отсекается уже на backend. Это осознанно мягкий путь, отличный от
// строгого IsDateAvailable по умолчанию.
func ValidateDateSelection(dateStr string, slots []domain.AvailabilitySlot, now time.Time) DateValidation {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return DateValidation{Valid: false, Message: msgDateRequired}
	}

	date, err := time.ParseInLocation(domain.DateFormat, trimmed, now.Location())
	if err != nil {
		return DateValidation{Valid: false, Message: msgDateMalformed}
	}

	if startOfDay(date).Before(startOfDay(now)) {
		return DateValidation{Valid: false, Message: msgDateInPast}
	}

	if !IsDateAvailable(date, slots, false, now) {
		return DateValidation{Valid: false, Message: msgDayNotOffered + AvailableDaysText(slots, false)}
	}

	return DateValidation{Valid: true}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// startOfDay обнуляет время, оставляя только дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
