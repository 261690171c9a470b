package playtime

import (
	"testing"
	"time"

	"github.com/Anasikus/time-tracker/internal/player"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAggregator(db *gorm.DB) *Aggregator {
	return NewAggregator(player.NewPlayerRepository(db), NewTimeLogRepository(db))
}

func TestGetPlaytimeForRangeReturnsEveryPlayer(t *testing.T) {
	db := newRepoTestDB(t)
	aggregator := newAggregator(db)
	repo := NewTimeLogRepository(db)

	active := seedPlayer(t, db, "Active")
	seedPlayer(t, db, "Idle")
	seedPlayer(t, db, "AlsoIdle")

	assert.NoError(t, repo.Upsert(&TimeLog{PlayerID: active.ID, Date: day("2025-07-07"), Duration: 30}))

	rows, err := aggregator.GetPlaytimeForRange(day("2025-07-07"), day("2025-07-13"))
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	for _, row := range rows {
		assert.NotNil(t, row.TimeLog)
		if row.Player.ID == active.ID {
			assert.Len(t, row.TimeLog, 1)
		} else {
			assert.Empty(t, row.TimeLog)
		}
	}
}

func TestGetPlaytimeForRangeInvalidRange(t *testing.T) {
	db := newRepoTestDB(t)
	aggregator := newAggregator(db)

	_, err := aggregator.GetPlaytimeForRange(day("2025-07-13"), day("2025-07-07"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

// Week of 2025-07-07 (Monday) through 2025-07-13 (Sunday): logs of 30, 90 and
// 150 minutes sum to 270 and classify low/medium/high, every other day none.
func TestWeekScenario(t *testing.T) {
	db := newRepoTestDB(t)
	aggregator := newAggregator(db)
	repo := NewTimeLogRepository(db)
	today := day("2025-07-20")

	p := seedPlayer(t, db, "A")
	assert.NoError(t, repo.Upsert(&TimeLog{PlayerID: p.ID, Date: day("2025-07-07"), Duration: 30}))
	assert.NoError(t, repo.Upsert(&TimeLog{PlayerID: p.ID, Date: day("2025-07-08"), Duration: 90}))
	assert.NoError(t, repo.Upsert(&TimeLog{PlayerID: p.ID, Date: day("2025-07-10"), Duration: 150}))

	rows, err := aggregator.GetPlaytimeForRange(day("2025-07-07"), day("2025-07-13"))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	totals := DayTotals(rows[0].TimeLog)
	sum := 0
	for _, minutes := range totals {
		sum += minutes
	}
	assert.Equal(t, 270, sum)

	expected := map[string]Category{
		"2025-07-07": CategoryLow,
		"2025-07-08": CategoryMedium,
		"2025-07-09": CategoryNone,
		"2025-07-10": CategoryHigh,
		"2025-07-11": CategoryNone,
		"2025-07-12": CategoryNone,
		"2025-07-13": CategoryNone,
	}
	for d, want := range expected {
		got := Classify(day(d), VacationWindow{}, "", totals[d], ScopeDay, today)
		assert.Equal(t, want, got, "category for %s", d)
	}
}

func TestDayTotals(t *testing.T) {
	logs := []TimeLog{
		{PlayerID: 1, Date: day("2025-07-07"), Duration: 30},
		{PlayerID: 1, Date: day("2025-07-09"), Duration: 45},
	}
	totals := DayTotals(logs)
	assert.Equal(t, map[string]int{"2025-07-07": 30, "2025-07-09": 45}, totals)
}

func TestWeeksOfMonth(t *testing.T) {
	// July 2025 starts on a Tuesday and ends on a Thursday.
	weeks := WeeksOfMonth(2025, time.July)
	assert.Len(t, weeks, 5)

	assert.Equal(t, "2025-07-01", weeks[0].Start.Format("2006-01-02"))
	assert.Equal(t, "2025-07-06", weeks[0].End.Format("2006-01-02"))
	assert.Equal(t, "2025-07-07", weeks[1].Start.Format("2006-01-02"))
	assert.Equal(t, "2025-07-13", weeks[1].End.Format("2006-01-02"))
	assert.Equal(t, "2025-07-28", weeks[4].Start.Format("2006-01-02"))
	assert.Equal(t, "2025-07-31", weeks[4].End.Format("2006-01-02"))

	// The buckets cover the month exactly once.
	for i := 1; i < len(weeks); i++ {
		assert.Equal(t, weeks[i-1].End.AddDate(0, 0, 1), weeks[i].Start)
	}

	// A month that starts on Monday gets no leading partial bucket.
	sept := WeeksOfMonth(2025, time.September)
	assert.Equal(t, "2025-09-01", sept[0].Start.Format("2006-01-02"))
	assert.Equal(t, "2025-09-07", sept[0].End.Format("2006-01-02"))
}

func TestMonthSummary(t *testing.T) {
	db := newRepoTestDB(t)
	aggregator := newAggregator(db)
	repo := NewTimeLogRepository(db)
	today := day("2025-08-01")

	senior := player.Position{Title: "Старший модератор"}
	assert.NoError(t, db.Create(&senior).Error)

	p := &player.Player{Nickname: "Vera", PositionID: &senior.ID}
	assert.NoError(t, db.Create(p).Error)

	// Full Monday-Sunday week 07..13: 8 hours total.
	assert.NoError(t, repo.Upsert(&TimeLog{PlayerID: p.ID, Date: day("2025-07-07"), Duration: 300}))
	assert.NoError(t, repo.Upsert(&TimeLog{PlayerID: p.ID, Date: day("2025-07-10"), Duration: 180}))

	summaries, err := aggregator.MonthSummary(2025, time.July, today)
	assert.NoError(t, err)
	assert.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Len(t, summary.Weeks, 5)
	assert.Len(t, summary.Days, 31)

	week := summary.Weeks[1]
	assert.Equal(t, "2025-07-07", week.Start)
	assert.Equal(t, 480, week.Minutes)
	// 8h is inside the senior moderator 7..14h band.
	assert.Equal(t, CategoryMedium, week.Category)

	// An empty week for a senior moderator is low, not none.
	assert.Equal(t, CategoryLow, summary.Weeks[3].Category)

	assert.Equal(t, CategoryHigh, summary.Days["2025-07-07"].Category)
	assert.Equal(t, CategoryHigh, summary.Days["2025-07-10"].Category)
	assert.Equal(t, CategoryNone, summary.Days["2025-07-09"].Category)
}
