// playtime/aggregator.go
package playtime

import (
	"errors"
	"time"

	"github.com/Anasikus/time-tracker/internal/player"
)

// ErrInvalidRange is returned when a requested range has start after end.
var ErrInvalidRange = errors.New("invalid date range")

const dateLayout = "2006-01-02"

// Aggregator groups time log rows per player for a requested date range.
// It is read-only; classification happens on top of its output.
type Aggregator struct {
	players  player.PlayerRepository
	timeLogs TimeLogRepository
}

// NewAggregator creates a new playtime aggregator
func NewAggregator(players player.PlayerRepository, timeLogs TimeLogRepository) *Aggregator {
	return &Aggregator{
		players:  players,
		timeLogs: timeLogs,
	}
}

// GetPlaytimeForRange loads every stored player and all time log rows with a
// date in [start, end], grouped per player. Every player yields exactly one
// row, with an empty TimeLog slice when it has no activity in range, so the
// caller can bucket the raw rows by day, week or month however it needs.
func (a *Aggregator) GetPlaytimeForRange(start, end time.Time) ([]PlayerPlaytime, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	players, err := a.players.GetAllPlayers()
	if err != nil {
		return nil, err
	}

	logs, err := a.timeLogs.GetRange(start, end)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]TimeLog, len(players))
	for _, log := range logs {
		grouped[log.PlayerID] = append(grouped[log.PlayerID], log)
	}

	result := make([]PlayerPlaytime, 0, len(players))
	for _, p := range players {
		entries := grouped[p.ID]
		if entries == nil {
			entries = []TimeLog{}
		}
		result = append(result, PlayerPlaytime{Player: p, TimeLog: entries})
	}

	return result, nil
}

// DayTotals keys one player's log rows by ISO calendar date. Duplicate dates
// cannot occur; the (player_id, date) unique index guarantees it.
func DayTotals(logs []TimeLog) map[string]int {
	totals := make(map[string]int, len(logs))
	for _, log := range logs {
		totals[log.Date.Format(dateLayout)] = log.Duration
	}
	return totals
}

// WeekBucket is a run of consecutive days inside one month, at most seven
// long, cut at Mondays and at month boundaries.
type WeekBucket struct {
	Start time.Time
	End   time.Time
}

// WeeksOfMonth splits a month into week buckets. Weeks start on Monday; the
// first and last buckets are clipped to the month.
func WeeksOfMonth(year int, month time.Month) []WeekBucket {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var buckets []WeekBucket
	bucketStart := first
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Monday && !day.Equal(bucketStart) {
			buckets = append(buckets, WeekBucket{Start: bucketStart, End: day.AddDate(0, 0, -1)})
			bucketStart = day
		}
	}
	buckets = append(buckets, WeekBucket{Start: bucketStart, End: last})
	return buckets
}

// MonthSummary builds the classified month-by-weeks view: per-day categories
// and per-week bucket totals with role-aware weekly categories. today is the
// reference day for open-ended vacations.
func (a *Aggregator) MonthSummary(year int, month time.Month, today time.Time) ([]PlayerMonthSummary, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rows, err := a.GetPlaytimeForRange(first, last)
	if err != nil {
		return nil, err
	}

	weeks := WeeksOfMonth(year, month)

	summaries := make([]PlayerMonthSummary, 0, len(rows))
	for _, row := range rows {
		window := windowOf(row.Player.VacationStart, row.Player.VacationEnd)
		title := ""
		if row.Player.Position != nil {
			title = row.Player.Position.Title
		}

		totals := DayTotals(row.TimeLog)

		days := make(map[string]DaySummary, len(totals))
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			key := day.Format(dateLayout)
			minutes := totals[key]
			days[key] = DaySummary{
				Minutes:  minutes,
				Category: Classify(day, window, title, minutes, ScopeDay, today),
			}
		}

		weekSummaries := make([]WeekSummary, 0, len(weeks))
		for _, bucket := range weeks {
			minutes := 0
			for day := bucket.Start; !day.After(bucket.End); day = day.AddDate(0, 0, 1) {
				minutes += totals[day.Format(dateLayout)]
			}
			weekSummaries = append(weekSummaries, WeekSummary{
				Start:    bucket.Start.Format(dateLayout),
				End:      bucket.End.Format(dateLayout),
				Minutes:  minutes,
				Category: Classify(bucket.Start, window, title, minutes, ScopeWeek, today),
			})
		}

		summaries = append(summaries, PlayerMonthSummary{
			Player: row.Player,
			Days:   days,
			Weeks:  weekSummaries,
		})
	}

	return summaries, nil
}
