// playtime/sync.go
package playtime

import (
	"context"
	"time"

	"github.com/Anasikus/time-tracker/internal/panel"
	"github.com/Anasikus/time-tracker/internal/player"
)

// SyncService pulls per-UUID online time from the external panel and upserts
// it into the time log, keyed by (player, date).
type SyncService struct {
	players  player.PlayerRepository
	timeLogs TimeLogRepository
	panel    panel.Client
}

// NewSyncService creates a new panel sync service
func NewSyncService(players player.PlayerRepository, timeLogs TimeLogRepository, panelClient panel.Client) *SyncService {
	return &SyncService{
		players:  players,
		timeLogs: timeLogs,
		panel:    panelClient,
	}
}

// SyncRange fetches online seconds for every player with a uuid across
// [start, end] inclusive and converts them to per-day minute entries, one
// candidate per (player, date); dates absent from the panel response become
// zero minutes. Players without a uuid are skipped, and uuids the panel
// reports that map to no known player are ignored; both are deliberate
// best-effort policies, not errors.
//
// With previewOnly the candidates are returned without writing. Otherwise
// all candidates are applied as idempotent upserts in one all-or-nothing
// transaction and the written count is returned.
func (s *SyncService) SyncRange(ctx context.Context, start, end time.Time, authToken string, previewOnly bool) (*SyncResult, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	players, err := s.players.GetAllPlayers()
	if err != nil {
		return nil, err
	}

	synced := make([]player.Player, 0, len(players))
	uuids := make([]string, 0, len(players))
	for _, p := range players {
		if p.UUID == nil || *p.UUID == "" {
			continue
		}
		synced = append(synced, p)
		uuids = append(uuids, *p.UUID)
	}

	if len(synced) == 0 {
		return &SyncResult{Count: 0}, nil
	}

	online, err := s.panel.BulkOnlineTime(ctx, authToken, uuids, start, end)
	if err != nil {
		return nil, err
	}

	days := daysBetween(start, end)

	entries := make([]SyncEntry, 0, len(synced)*len(days))
	for _, p := range synced {
		perDate := online[*p.UUID]
		for _, day := range days {
			key := day.Format(dateLayout)
			entries = append(entries, SyncEntry{
				PlayerID: p.ID,
				Nickname: p.Nickname,
				UUID:     *p.UUID,
				Date:     key,
				Duration: secondsToMinutes(perDate[key]),
			})
		}
	}

	if previewOnly {
		return &SyncResult{Count: len(entries), Preview: entries}, nil
	}

	logs := make([]TimeLog, 0, len(entries))
	for _, e := range entries {
		day, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return nil, err
		}
		logs = append(logs, TimeLog{PlayerID: e.PlayerID, Date: day, Duration: e.Duration})
	}

	if err := s.timeLogs.UpsertMany(logs); err != nil {
		return nil, err
	}

	return &SyncResult{Count: len(logs)}, nil
}

// secondsToMinutes converts panel seconds to whole minutes, rounding half up
// (30s rounds away from zero).
func secondsToMinutes(seconds int64) int {
	return int((seconds + 30) / 60)
}

func daysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for day := DayStart(start); !day.After(DayStart(end)); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
