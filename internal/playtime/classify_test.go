package playtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func TestClassifyDayThresholds(t *testing.T) {
	today := day("2025-07-15")

	tests := []struct {
		name     string
		minutes  int
		expected Category
	}{
		{"two and a half hours", 150, CategoryHigh},
		{"just above two hours", 121, CategoryHigh},
		{"exactly two hours", 120, CategoryMedium},
		{"ninety minutes", 90, CategoryMedium},
		{"just above one hour", 61, CategoryMedium},
		{"exactly one hour", 60, CategoryLow},
		{"thirty minutes", 30, CategoryLow},
		{"one minute", 1, CategoryLow},
		{"zero", 0, CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(day("2025-07-07"), VacationWindow{}, "Модератор", tt.minutes, ScopeDay, today)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifyVacation(t *testing.T) {
	today := day("2025-07-20")
	window := VacationWindow{Start: dayPtr("2025-07-05"), End: dayPtr("2025-07-10")}

	// Boundary dates count as in-vacation, both ends.
	assert.Equal(t, CategoryVacationIdle, Classify(day("2025-07-05"), window, "", 0, ScopeDay, today))
	assert.Equal(t, CategoryVacationIdle, Classify(day("2025-07-10"), window, "", 0, ScopeDay, today))
	assert.Equal(t, CategoryVacationActive, Classify(day("2025-07-07"), window, "", 45, ScopeDay, today))

	// Outside the window the normal thresholds apply.
	assert.Equal(t, CategoryNone, Classify(day("2025-07-04"), window, "", 0, ScopeDay, today))
	assert.Equal(t, CategoryLow, Classify(day("2025-07-11"), window, "", 45, ScopeDay, today))
}

func TestClassifyOpenEndedVacation(t *testing.T) {
	today := day("2025-07-20")
	window := VacationWindow{Start: dayPtr("2025-07-05")}

	// A nil end runs through today inclusive.
	assert.Equal(t, CategoryVacationIdle, Classify(day("2025-07-20"), window, "", 0, ScopeDay, today))
	assert.Equal(t, CategoryVacationIdle, Classify(day("2025-07-12"), window, "", 0, ScopeDay, today))
	assert.Equal(t, CategoryNone, Classify(day("2025-07-21"), window, "", 0, ScopeDay, today))
}

func TestClassifyRoleWeekThresholds(t *testing.T) {
	today := day("2025-08-01")
	date := day("2025-07-07")

	t.Run("senior moderator", func(t *testing.T) {
		assert.Equal(t, CategoryHigh, Classify(date, VacationWindow{}, "Старший модератор", 900, ScopeWeek, today))
		assert.Equal(t, CategoryMedium, Classify(date, VacationWindow{}, "Старший модератор", 840, ScopeWeek, today))
		assert.Equal(t, CategoryMedium, Classify(date, VacationWindow{}, "Старший модератор", 420, ScopeWeek, today))
		assert.Equal(t, CategoryLow, Classify(date, VacationWindow{}, "Старший модератор", 419, ScopeWeek, today))
	})

	t.Run("moderator", func(t *testing.T) {
		assert.Equal(t, CategoryHigh, Classify(date, VacationWindow{}, "Модератор", 1700, ScopeWeek, today))
		assert.Equal(t, CategoryMedium, Classify(date, VacationWindow{}, "Модератор", 1680, ScopeWeek, today))
		assert.Equal(t, CategoryMedium, Classify(date, VacationWindow{}, "Модератор", 840, ScopeWeek, today))
		assert.Equal(t, CategoryLow, Classify(date, VacationWindow{}, "Модератор", 839, ScopeWeek, today))
	})

	t.Run("matching is case-insensitive substring", func(t *testing.T) {
		assert.Equal(t, CategoryHigh, Classify(date, VacationWindow{}, "старший МОДЕРАТОР сервера", 900, ScopeWeek, today))
	})

	t.Run("role thresholds override vacation for week buckets", func(t *testing.T) {
		window := VacationWindow{Start: dayPtr("2025-07-01"), End: dayPtr("2025-07-31")}
		assert.Equal(t, CategoryLow, Classify(date, window, "Модератор", 0, ScopeWeek, today))
	})

	t.Run("role thresholds do not apply to day scope", func(t *testing.T) {
		assert.Equal(t, CategoryHigh, Classify(date, VacationWindow{}, "Старший модератор", 150, ScopeDay, today))
	})

	t.Run("non-moderator week falls back to generic thresholds", func(t *testing.T) {
		assert.Equal(t, CategoryHigh, Classify(date, VacationWindow{}, "Куратор", 150, ScopeWeek, today))
		assert.Equal(t, CategoryNone, Classify(date, VacationWindow{}, "", 0, ScopeWeek, today))
	})
}

func TestClassifyIsDeterministic(t *testing.T) {
	today := day("2025-07-20")
	window := VacationWindow{Start: dayPtr("2025-07-05"), End: dayPtr("2025-07-10")}

	first := Classify(day("2025-07-07"), window, "Модератор", 90, ScopeDay, today)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(day("2025-07-07"), window, "Модератор", 90, ScopeDay, today))
	}
}
