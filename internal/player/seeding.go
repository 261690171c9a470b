package player

import (
	"gorm.io/gorm"
)

// Label the UI treats as "on vacation"; it gates the vacation period fields.
const VacationStatusLabel = "в отпуске"

var defaultStatuses = []string{"активен", VacationStatusLabel, "неактивен"}
var defaultPositions = []string{"Стажёр", "Модератор", "Старший модератор", "Куратор"}
var defaultServers = []string{"Anarchy", "Survival", "SkyBlock"}

// SeedLookups inserts the default status/position/server rows when the
// lookup tables are empty, so a fresh database is immediately usable.
func SeedLookups(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Status{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for _, label := range defaultStatuses {
			if err := db.Create(&Status{Label: label}).Error; err != nil {
				return err
			}
		}
	}

	if err := db.Model(&Position{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for _, title := range defaultPositions {
			if err := db.Create(&Position{Title: title}).Error; err != nil {
				return err
			}
		}
	}

	if err := db.Model(&Server{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		for _, name := range defaultServers {
			if err := db.Create(&Server{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
