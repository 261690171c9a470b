// moderation/model.go
package moderation

import (
	"time"
)

// ModerationStat holds one player's moderation counters for one calendar
// month. Month is stored as the first day of the month; the (player_id,
// month) pair is unique and rows are only ever upserted, never deleted.
type ModerationStat struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PlayerID      uint      `json:"playerId" gorm:"not null;uniqueIndex:idx_moderation_player_month"`
	Month         time.Time `json:"month" gorm:"not null;uniqueIndex:idx_moderation_player_month"`
	Complaints    int       `json:"complaints" gorm:"not null;default:0"`
	Appeals       int       `json:"appeals" gorm:"not null;default:0"`
	ModComplaints int       `json:"modComplaints" gorm:"not null;default:0"`
	Trainees      int       `json:"trainees" gorm:"not null;default:0"`
	Moderators    int       `json:"moderators" gorm:"not null;default:0"`
}

// SaveStatInput is the body of POST /api/moderation.
type SaveStatInput struct {
	PlayerID      uint   `json:"playerId" binding:"required"`
	Month         string `json:"month" binding:"required"`
	Complaints    int    `json:"complaints"`
	Appeals       int    `json:"appeals"`
	ModComplaints int    `json:"modComplaints"`
	Trainees      int    `json:"trainees"`
	Moderators    int    `json:"moderators"`
}

// StatRow is one row of GET /api/moderation, joined with the player nickname.
type StatRow struct {
	PlayerID      uint   `json:"playerId"`
	Nickname      string `json:"nickname"`
	Complaints    int    `json:"complaints"`
	Appeals       int    `json:"appeals"`
	ModComplaints int    `json:"modComplaints"`
	Trainees      int    `json:"trainees"`
	Moderators    int    `json:"moderators"`
}

// PlayerRef is the id + nickname listing used by the moderation table UI.
type PlayerRef struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
}
