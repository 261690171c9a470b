// playtime/model.go
package playtime

import (
	"time"

	"github.com/Anasikus/time-tracker/internal/player"
)

// TimeLog stores one day's playtime for one player, in minutes.
// The (player_id, date) pair is unique; writes go through upserts, so at most
// one row per player per calendar day can ever exist.
type TimeLog struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	PlayerID uint      `json:"playerId" gorm:"not null;uniqueIndex:idx_time_logs_player_date"`
	Date     time.Time `json:"date" gorm:"not null;uniqueIndex:idx_time_logs_player_date"`
	Duration int       `json:"duration" gorm:"not null"`
}

// AddPlaytimeInput is the body of POST /api/playtime.
type AddPlaytimeInput struct {
	PlayerID uint   `json:"playerId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Duration *int   `json:"duration" binding:"required"`
}

// PlayerPlaytime pairs a player with its raw log rows for a requested range.
// TimeLog is empty (not nil) for players without activity, so every stored
// player appears in range responses.
type PlayerPlaytime struct {
	Player  player.Player `json:"player"`
	TimeLog []TimeLog     `json:"timeLog"`
}

// SyncEntry is one candidate (player, date, duration) produced by a panel sync.
type SyncEntry struct {
	PlayerID uint   `json:"playerId"`
	Nickname string `json:"nickname"`
	UUID     string `json:"uuid"`
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

// SyncResult is the response of POST /api/playtime/sync.
type SyncResult struct {
	Count   int         `json:"count"`
	Preview []SyncEntry `json:"preview,omitempty"`
}

// DaySummary is a single classified cell of the month view.
type DaySummary struct {
	Minutes  int      `json:"minutes"`
	Category Category `json:"category"`
}

// WeekSummary is a classified week bucket of the month view, clipped at
// month boundaries.
type WeekSummary struct {
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Minutes  int      `json:"minutes"`
	Category Category `json:"category"`
}

// PlayerMonthSummary is one player's row of GET /api/playtime/month.
type PlayerMonthSummary struct {
	Player player.Player         `json:"player"`
	Days   map[string]DaySummary `json:"days"`
	Weeks  []WeekSummary         `json:"weeks"`
}
