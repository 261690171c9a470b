// playtime/repository.go
package playtime

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTimeLogNotFound is returned for single-day lookups with no stored row.
var ErrTimeLogNotFound = errors.New("time log not found")

// TimeLogRepository defines all database operations for playtime logs
type TimeLogRepository interface {
	// Upsert writes one day's duration, overwriting any existing row for
	// the same (playerId, date).
	Upsert(log *TimeLog) error
	// UpsertMany applies all entries inside a single transaction.
	// Either every entry commits or none do.
	UpsertMany(logs []TimeLog) error
	GetByPlayerAndDate(playerID uint, date time.Time) (*TimeLog, error)
	// GetRange returns all rows with date in [start, end], day-inclusive.
	GetRange(start, end time.Time) ([]TimeLog, error)
}

type timeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository creates a new time log repository
func NewTimeLogRepository(db *gorm.DB) TimeLogRepository {
	return &timeLogRepository{db: db}
}

var upsertConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "player_id"}, {Name: "date"}},
	DoUpdates: clause.AssignmentColumns([]string{"duration"}),
}

func (r *timeLogRepository) Upsert(log *TimeLog) error {
	log.Date = DayStart(log.Date)
	return r.db.Clauses(upsertConflict).Create(log).Error
}

func (r *timeLogRepository) UpsertMany(logs []TimeLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range logs {
			logs[i].Date = DayStart(logs[i].Date)
			if err := tx.Clauses(upsertConflict).Create(&logs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *timeLogRepository) GetByPlayerAndDate(playerID uint, date time.Time) (*TimeLog, error) {
	var log TimeLog
	day := DayStart(date)
	err := r.db.
		Where("player_id = ? AND date >= ? AND date <= ?", playerID, day, DayEnd(date)).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeLogNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *timeLogRepository) GetRange(start, end time.Time) ([]TimeLog, error) {
	var logs []TimeLog
	err := r.db.
		Where("date >= ? AND date <= ?", DayStart(start), DayEnd(end)).
		Order("date asc").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// NormalizeLegacySentinels rewrites the historical -1 "on vacation" duration
// sentinel to zero. Vacation handling lives on the player's vacation window
// now, so any negative duration is stale data. Run once at startup after
// migration.
func NormalizeLegacySentinels(db *gorm.DB) error {
	return db.Model(&TimeLog{}).Where("duration < 0").Update("duration", 0).Error
}

// DayStart normalizes a timestamp to 00:00:00 UTC of its calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayEnd returns 23:59:59 UTC of the timestamp's calendar day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
