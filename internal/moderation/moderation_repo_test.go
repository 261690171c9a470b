package moderation

import (
	"testing"
	"time"

	"github.com/Anasikus/time-tracker/internal/player"
	"github.com/Anasikus/time-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func month(s string) time.Time {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newModerationTestDB(t *testing.T) *gorm.DB {
	return testutil.NewTestDB(t,
		&player.Status{}, &player.Position{}, &player.Server{}, &player.Player{},
		&ModerationStat{},
	)
}

func TestUpsertStatOverwrites(t *testing.T) {
	db := newModerationTestDB(t)
	repo := NewModerationRepository(db)

	p := player.Player{Nickname: "Steve"}
	assert.NoError(t, db.Create(&p).Error)

	assert.NoError(t, repo.UpsertStat(&ModerationStat{
		PlayerID: p.ID, Month: month("2025-07"), Complaints: 3, Appeals: 1,
	}))
	assert.NoError(t, repo.UpsertStat(&ModerationStat{
		PlayerID: p.ID, Month: month("2025-07"), Complaints: 7, Appeals: 2, Trainees: 1,
	}))

	var count int64
	assert.NoError(t, db.Model(&ModerationStat{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	rows, err := repo.GetStatsForMonth(month("2025-07"))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Complaints)
	assert.Equal(t, 2, rows[0].Appeals)
	assert.Equal(t, 1, rows[0].Trainees)
	assert.Equal(t, "Steve", rows[0].Nickname)
}

func TestGetStatsForMonthFiltersByMonth(t *testing.T) {
	db := newModerationTestDB(t)
	repo := NewModerationRepository(db)

	p := player.Player{Nickname: "Steve"}
	assert.NoError(t, db.Create(&p).Error)

	assert.NoError(t, repo.UpsertStat(&ModerationStat{PlayerID: p.ID, Month: month("2025-06"), Complaints: 1}))
	assert.NoError(t, repo.UpsertStat(&ModerationStat{PlayerID: p.ID, Month: month("2025-07"), Complaints: 2}))

	rows, err := repo.GetStatsForMonth(month("2025-07"))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Complaints)

	// Mid-month timestamps snap to the month.
	rows, err = repo.GetStatsForMonth(month("2025-06").AddDate(0, 0, 14))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Complaints)
}

func TestGetPlayerRefsOrdered(t *testing.T) {
	db := newModerationTestDB(t)
	repo := NewModerationRepository(db)

	for _, nickname := range []string{"Zoe", "Amy"} {
		assert.NoError(t, db.Create(&player.Player{Nickname: nickname}).Error)
	}

	refs, err := repo.GetPlayerRefs()
	assert.NoError(t, err)
	assert.Len(t, refs, 2)
	assert.Equal(t, "Amy", refs[0].Nickname)
	assert.Equal(t, "Zoe", refs[1].Nickname)
}
