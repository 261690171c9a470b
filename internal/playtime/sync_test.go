package playtime

import (
	"context"
	"testing"
	"time"

	"github.com/Anasikus/time-tracker/internal/panel"
	"github.com/Anasikus/time-tracker/internal/player"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePanel struct {
	response map[string]map[string]int64
	err      error
	calls    int
	gotUUIDs []string
}

func (f *fakePanel) BulkOnlineTime(ctx context.Context, token string, uuids []string, start, end time.Time) (map[string]map[string]int64, error) {
	f.calls++
	f.gotUUIDs = uuids
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func seedSyncPlayer(t *testing.T, db *gorm.DB, nickname, uuid string) *player.Player {
	t.Helper()
	p := &player.Player{Nickname: nickname}
	if uuid != "" {
		p.UUID = &uuid
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to seed player: %v", err)
	}
	return p
}

func newSyncService(db *gorm.DB, client panel.Client) *SyncService {
	return NewSyncService(player.NewPlayerRepository(db), NewTimeLogRepository(db), client)
}

func TestSyncRangeWritesPerDayMinutes(t *testing.T) {
	db := newRepoTestDB(t)
	p := seedSyncPlayer(t, db, "Steve", "uuid-steve")

	client := &fakePanel{response: map[string]map[string]int64{
		"uuid-steve": {
			"2025-07-07": 1800, // 30m
			"2025-07-08": 5430, // 90.5m, rounds half up to 91
		},
	}}
	service := newSyncService(db, client)

	result, err := service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-09"), "token", false)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 1, client.calls)

	repo := NewTimeLogRepository(db)
	log, err := repo.GetByPlayerAndDate(p.ID, day("2025-07-07"))
	assert.NoError(t, err)
	assert.Equal(t, 30, log.Duration)

	log, err = repo.GetByPlayerAndDate(p.ID, day("2025-07-08"))
	assert.NoError(t, err)
	assert.Equal(t, 91, log.Duration)

	// Absent panel dates become explicit zero entries.
	log, err = repo.GetByPlayerAndDate(p.ID, day("2025-07-09"))
	assert.NoError(t, err)
	assert.Equal(t, 0, log.Duration)
}

func TestSyncRangeIsIdempotent(t *testing.T) {
	db := newRepoTestDB(t)
	seedSyncPlayer(t, db, "Steve", "uuid-steve")

	client := &fakePanel{response: map[string]map[string]int64{
		"uuid-steve": {"2025-07-07": 3600},
	}}
	service := newSyncService(db, client)

	_, err := service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-08"), "token", false)
	assert.NoError(t, err)
	_, err = service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-08"), "token", false)
	assert.NoError(t, err)

	var count int64
	assert.NoError(t, db.Model(&TimeLog{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	log, err := NewTimeLogRepository(db).GetByPlayerAndDate(1, day("2025-07-07"))
	assert.NoError(t, err)
	assert.Equal(t, 60, log.Duration)
}

func TestSyncRangeSkipsPlayersWithoutUUID(t *testing.T) {
	db := newRepoTestDB(t)
	repo := NewTimeLogRepository(db)
	manual := seedSyncPlayer(t, db, "Manual", "")
	seedSyncPlayer(t, db, "Steve", "uuid-steve")

	// Pre-existing manual entry must survive the sync untouched.
	assert.NoError(t, repo.Upsert(&TimeLog{PlayerID: manual.ID, Date: day("2025-07-07"), Duration: 55}))

	client := &fakePanel{response: map[string]map[string]int64{
		"uuid-steve": {"2025-07-07": 600},
	}}
	service := newSyncService(db, client)

	result, err := service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-07"), "token", false)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, []string{"uuid-steve"}, client.gotUUIDs)

	log, err := repo.GetByPlayerAndDate(manual.ID, day("2025-07-07"))
	assert.NoError(t, err)
	assert.Equal(t, 55, log.Duration)
}

func TestSyncRangeIgnoresUnknownUUIDs(t *testing.T) {
	db := newRepoTestDB(t)
	p := seedSyncPlayer(t, db, "Steve", "uuid-steve")

	client := &fakePanel{response: map[string]map[string]int64{
		"uuid-steve":   {"2025-07-07": 600},
		"uuid-unknown": {"2025-07-07": 999999},
	}}
	service := newSyncService(db, client)

	result, err := service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-07"), "token", false)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	log, err := NewTimeLogRepository(db).GetByPlayerAndDate(p.ID, day("2025-07-07"))
	assert.NoError(t, err)
	assert.Equal(t, 10, log.Duration)
}

func TestSyncRangePreviewDoesNotWrite(t *testing.T) {
	db := newRepoTestDB(t)
	seedSyncPlayer(t, db, "Steve", "uuid-steve")

	client := &fakePanel{response: map[string]map[string]int64{
		"uuid-steve": {"2025-07-07": 3600},
	}}
	service := newSyncService(db, client)

	result, err := service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-08"), "token", true)
	assert.NoError(t, err)
	assert.Len(t, result.Preview, 2)
	assert.Equal(t, 60, result.Preview[0].Duration)
	assert.Equal(t, 0, result.Preview[1].Duration)

	var count int64
	assert.NoError(t, db.Model(&TimeLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSyncRangePropagatesPanelErrors(t *testing.T) {
	db := newRepoTestDB(t)
	seedSyncPlayer(t, db, "Steve", "uuid-steve")

	service := newSyncService(db, &fakePanel{err: panel.ErrUnauthorized})
	_, err := service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-08"), "bad", false)
	assert.ErrorIs(t, err, panel.ErrUnauthorized)

	service = newSyncService(db, &fakePanel{err: panel.ErrUnavailable})
	_, err = service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-08"), "token", false)
	assert.ErrorIs(t, err, panel.ErrUnavailable)

	var count int64
	assert.NoError(t, db.Model(&TimeLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSyncRangeNoSyncablePlayers(t *testing.T) {
	db := newRepoTestDB(t)
	seedSyncPlayer(t, db, "Manual", "")

	client := &fakePanel{}
	service := newSyncService(db, client)

	result, err := service.SyncRange(context.Background(), day("2025-07-07"), day("2025-07-08"), "token", false)
	assert.NoError(t, err)
	assert.Zero(t, result.Count)
	assert.Zero(t, client.calls, "panel must not be called without uuids")
}

func TestSecondsToMinutesRounding(t *testing.T) {
	assert.Equal(t, 0, secondsToMinutes(0))
	assert.Equal(t, 0, secondsToMinutes(29))
	assert.Equal(t, 1, secondsToMinutes(30))
	assert.Equal(t, 1, secondsToMinutes(89))
	assert.Equal(t, 2, secondsToMinutes(90))
	assert.Equal(t, 60, secondsToMinutes(3600))
}
