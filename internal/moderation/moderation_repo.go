// moderation/repository.go
package moderation

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModerationRepository defines database operations for moderation counters
type ModerationRepository interface {
	// UpsertStat writes a month's counters, overwriting any existing row
	// for the same (playerId, month).
	UpsertStat(stat *ModerationStat) error
	GetStatsForMonth(month time.Time) ([]StatRow, error)
	GetPlayerRefs() ([]PlayerRef, error)
}

type moderationRepository struct {
	db *gorm.DB
}

// NewModerationRepository creates a new moderation repository
func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) UpsertStat(stat *ModerationStat) error {
	stat.Month = monthStart(stat.Month)
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"complaints", "appeals", "mod_complaints", "trainees", "moderators",
		}),
	}).Create(stat).Error
}

func (r *moderationRepository) GetStatsForMonth(month time.Time) ([]StatRow, error) {
	var rows []StatRow
	err := r.db.Model(&ModerationStat{}).
		Select("moderation_stats.player_id, players.nickname, moderation_stats.complaints, moderation_stats.appeals, moderation_stats.mod_complaints, moderation_stats.trainees, moderation_stats.moderators").
		Joins("JOIN players ON players.id = moderation_stats.player_id").
		Where("moderation_stats.month = ?", monthStart(month)).
		Order("players.nickname asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *moderationRepository) GetPlayerRefs() ([]PlayerRef, error) {
	var refs []PlayerRef
	err := r.db.Table("players").
		Select("id, nickname").
		Order("nickname asc").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
