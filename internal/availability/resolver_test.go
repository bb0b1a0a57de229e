package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/types"
)

func slot(day, start, end string) domain.AvailabilitySlot {
	return domain.AvailabilitySlot{
		Day:       day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

// 2025-11-03 is a Monday.
func monday(hour int) time.Time {
	return time.Date(2025, 11, 3, hour, 0, 0, 0, time.UTC)
}

func TestIsDateAvailable_EmptyScheduleMeansAlwaysAvailable(t *testing.T) {
	now := monday(12)

	for i := 0; i < 7; i++ {
		date := now.AddDate(0, 0, i)
		assert.True(t, IsDateAvailable(date, nil, true, now), "day offset %d", i)
	}
}

func TestIsDateAvailable_DayNotInSchedule(t *testing.T) {
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")}
	now := monday(8)

	tuesday := monday(0).AddDate(0, 0, 1)
	assert.False(t, IsDateAvailable(tuesday, slots, true, now))
	assert.True(t, IsDateAvailable(monday(0), slots, true, now))
}

func TestIsDateAvailable_TodayAfterClosing(t *testing.T) {
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")}

	// Сейчас понедельник 18:00, окно закрылось в 17:00
	assert.False(t, IsDateAvailable(monday(0), slots, true, monday(18)))

	// Сейчас понедельник 10:00, окно еще открыто
	assert.True(t, IsDateAvailable(monday(0), slots, true, monday(10)))

	// Без проверки рабочих часов закрытый день проходит
	assert.True(t, IsDateAvailable(monday(0), slots, false, monday(18)))
}

func TestIsDateAvailable_WorkingHoursOnlyAppliedToToday(t *testing.T) {
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")}
	now := monday(18)

	// Следующий понедельник доступен, хотя сегодняшнее окно уже закрыто
	nextMonday := monday(0).AddDate(0, 0, 7)
	assert.True(t, IsDateAvailable(nextMonday, slots, true, now))
}

func TestIsDateAvailable_FirstMatchingSlotWins(t *testing.T) {
	// Два окна на понедельник: разрешение идет по первому
	slots := []domain.AvailabilitySlot{
		slot("Monday", "09:00", "12:00"),
		slot("Monday", "14:00", "20:00"),
	}

	// 13:00: первое окно уже закрыто, второе не рассматривается
	assert.False(t, IsDateAvailable(monday(0), slots, true, monday(13)))
}

func TestIsDateAvailable_CaseInsensitiveDayNames(t *testing.T) {
	now := monday(8)

	assert.True(t, IsDateAvailable(monday(0), []domain.AvailabilitySlot{slot("monday", "09:00", "17:00")}, true, now))
	assert.True(t, IsDateAvailable(monday(0), []domain.AvailabilitySlot{slot("MONDAY", "09:00", "17:00")}, true, now))
	assert.True(t, IsDateAvailable(monday(0), []domain.AvailabilitySlot{slot("Mon", "09:00", "17:00")}, true, now))
}

func TestIsDateAvailable_OpenEndedWindow(t *testing.T) {
	// Окно без времени закрытия открыто весь день
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "")}
	assert.True(t, IsDateAvailable(monday(0), slots, true, monday(23)))
}

func TestMinSelectableDate_TodayWhenAvailable(t *testing.T) {
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")}
	now := monday(10)

	assert.Equal(t, "2025-11-03", MinSelectableDate(now, slots))
}

func TestMinSelectableDate_SkipsToNextOfferedDay(t *testing.T) {
	slots := []domain.AvailabilitySlot{slot("Wednesday", "09:00", "17:00")}
	now := monday(10)

	assert.Equal(t, "2025-11-05", MinSelectableDate(now, slots))
}

func TestMinSelectableDate_TodayClosedRollsToNextWeek(t *testing.T) {
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")}
	now := monday(18)

	// Сегодняшнее окно закрыто, следующий понедельник через неделю
	assert.Equal(t, "2025-11-10", MinSelectableDate(now, slots))
}

func TestMinSelectableDate_NoResolvableDayFallsBackToToday(t *testing.T) {
	// День, который никогда не совпадет с днем недели
	slots := []domain.AvailabilitySlot{slot("Someday", "09:00", "17:00")}
	now := monday(10)

	assert.Equal(t, "2025-11-03", MinSelectableDate(now, slots))
	assert.Equal(t, "No days available", AvailableDaysText(slots, false))
}

func TestMinSelectableDate_EmptySchedule(t *testing.T) {
	assert.Equal(t, "2025-11-03", MinSelectableDate(monday(10), nil))
}

func TestAvailableDaysText(t *testing.T) {
	tests := []struct {
		name         string
		slots        []domain.AvailabilitySlot
		includeHours bool
		want         string
	}{
		{
			name:  "empty schedule",
			slots: nil,
			want:  "All days",
		},
		{
			name:  "single day without hours",
			slots: []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")},
			want:  "Monday",
		},
		{
			name:         "single day with hours",
			slots:        []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")},
			includeHours: true,
			want:         "Monday (9:00 AM - 5:00 PM)",
		},
		{
			name: "schedule order preserved, duplicates dropped",
			slots: []domain.AvailabilitySlot{
				slot("Friday", "09:00", "17:00"),
				slot("Monday", "09:00", "17:00"),
				slot("Friday", "18:00", "20:00"),
			},
			want: "Friday, Monday",
		},
		{
			name:  "unresolvable entries only",
			slots: []domain.AvailabilitySlot{slot("Someday", "09:00", "17:00")},
			want:  "No days available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableDaysText(tt.slots, tt.includeHours))
		})
	}
}

func TestValidateDateSelection(t *testing.T) {
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")}
	now := monday(10)

	tests := []struct {
		name    string
		date    string
		slots   []domain.AvailabilitySlot
		valid   bool
		message string
	}{
		{
			name:    "empty input",
			date:    "",
			slots:   slots,
			message: "Please select a date",
		},
		{
			name:    "whitespace input",
			date:    "   ",
			slots:   slots,
			message: "Please select a date",
		},
		{
			name:    "malformed date",
			date:    "03.11.2025",
			slots:   slots,
			message: "Please enter a valid date",
		},
		{
			name:    "past date",
			date:    "2025-11-02",
			slots:   slots,
			message: "Please select a date from today onwards",
		},
		{
			name:    "day not offered",
			date:    "2025-11-04",
			slots:   slots,
			message: "The artisan is not available on this day. Available days: Monday",
		},
		{
			name:  "today on offered day",
			date:  "2025-11-03",
			slots: slots,
			valid: true,
		},
		{
			name:  "any date with empty schedule",
			date:  "2025-11-04",
			slots: nil,
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDateSelection(tt.date, tt.slots, now)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}

func TestValidateDateSelection_IgnoresWorkingHoursForToday(t *testing.T) {
	// Форма пропускает сегодняшнюю дату даже после закрытия окна;
	// строгий IsDateAvailable при этом отказывает
	slots := []domain.AvailabilitySlot{slot("Monday", "09:00", "17:00")}
	now := monday(18)

	result := ValidateDateSelection("2025-11-03", slots, now)
	require.True(t, result.Valid)
	assert.False(t, IsDateAvailable(monday(0), slots, true, now))
}
