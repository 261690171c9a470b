package playtime

import (
	"strings"
	"time"
)

// Category is the display classification of one playtime cell.
type Category string

const (
	CategoryNone           Category = "none"
	CategoryLow            Category = "low"
	CategoryMedium         Category = "medium"
	CategoryHigh           Category = "high"
	CategoryVacationActive Category = "vacation-active"
	CategoryVacationIdle   Category = "vacation-idle"
)

// Scope tells Classify whether the duration covers a single day or an
// aggregated week bucket. Role thresholds apply only to week buckets.
type Scope int

const (
	ScopeDay Scope = iota
	ScopeWeek
)

// Generic thresholds, minutes. Apply to single days and to week buckets of
// players without a moderator position.
const (
	highThreshold   = 120
	mediumThreshold = 60
)

// Weekly role thresholds, minutes.
const (
	seniorWeekHigh = 14 * 60
	seniorWeekLow  = 7 * 60
	modWeekHigh    = 28 * 60
	modWeekLow     = 14 * 60
)

// Position title substrings that select role thresholds. Matching is
// case-insensitive; the senior title must be checked first since it contains
// the plain one.
const (
	seniorModeratorTitle = "старший модератор"
	moderatorTitle       = "модератор"
)

// VacationWindow is a player's vacation period. A nil End means the vacation
// is open-ended and runs through "today".
type VacationWindow struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether date falls inside the window, inclusive on both
// ends. An unset Start means no vacation at all.
func (w VacationWindow) Contains(date, today time.Time) bool {
	if w.Start == nil {
		return false
	}
	day := DayStart(date)
	start := DayStart(*w.Start)
	end := DayStart(today)
	if w.End != nil {
		end = DayStart(*w.End)
	}
	return !day.Before(start) && !day.After(end)
}

// Classify maps one aggregated duration to its display category.
//
// It is deterministic and side-effect free: the reference day for open-ended
// vacations is passed in as today rather than read from the clock. For week
// buckets the caller passes the bucket's first day as date; role thresholds,
// when the position title matches, take precedence over the vacation and
// generic checks.
func Classify(date time.Time, window VacationWindow, positionTitle string, minutes int, scope Scope, today time.Time) Category {
	if scope == ScopeWeek {
		if category, ok := classifyByRole(positionTitle, minutes); ok {
			return category
		}
	}

	if window.Contains(date, today) {
		if minutes > 0 {
			return CategoryVacationActive
		}
		return CategoryVacationIdle
	}

	switch {
	case minutes > highThreshold:
		return CategoryHigh
	case minutes > mediumThreshold:
		return CategoryMedium
	case minutes > 0:
		return CategoryLow
	default:
		return CategoryNone
	}
}

func classifyByRole(positionTitle string, minutes int) (Category, bool) {
	title := strings.ToLower(positionTitle)

	if strings.Contains(title, seniorModeratorTitle) {
		switch {
		case minutes > seniorWeekHigh:
			return CategoryHigh, true
		case minutes >= seniorWeekLow:
			return CategoryMedium, true
		default:
			return CategoryLow, true
		}
	}

	if strings.Contains(title, moderatorTitle) {
		switch {
		case minutes > modWeekHigh:
			return CategoryHigh, true
		case minutes >= modWeekLow:
			return CategoryMedium, true
		default:
			return CategoryLow, true
		}
	}

	return CategoryNone, false
}

// windowOf extracts a player's vacation window for classification.
func windowOf(start, end *time.Time) VacationWindow {
	return VacationWindow{Start: start, End: end}
}
