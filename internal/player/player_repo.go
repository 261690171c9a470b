// player/repository.go
package player

import (
	"errors"

	"gorm.io/gorm"
)

// ErrPlayerNotFound is returned for lookups of unknown player ids.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository defines all database operations for player management
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers() ([]Player, error)
	UpdatePlayer(player *Player) error
	DeletePlayer(id uint) error

	// Lookup tables
	GetStatuses() ([]Status, error)
	GetPositions() ([]Position, error)
	GetServers() ([]Server, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// CreatePlayer adds a new player to the database
func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

// GetPlayerByID retrieves a player with its lookup associations preloaded
func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	err := r.db.
		Preload("Status").
		Preload("Position").
		Preload("Server").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetAllPlayers retrieves every player with status/position/server preloaded
func (r *playerRepository) GetAllPlayers() ([]Player, error) {
	var players []Player
	err := r.db.
		Preload("Status").
		Preload("Position").
		Preload("Server").
		Order("nickname asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// UpdatePlayer saves the full player row
func (r *playerRepository) UpdatePlayer(player *Player) error {
	return r.db.Save(player).Error
}

// DeletePlayer removes a player and cascades its time logs in one transaction
func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM time_logs WHERE player_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&Player{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPlayerNotFound
		}
		return nil
	})
}

func (r *playerRepository) GetStatuses() ([]Status, error) {
	var statuses []Status
	if err := r.db.Order("id asc").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *playerRepository) GetPositions() ([]Position, error) {
	var positions []Position
	if err := r.db.Order("id asc").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *playerRepository) GetServers() ([]Server, error) {
	var servers []Server
	if err := r.db.Order("id asc").Find(&servers).Error; err != nil {
		return nil, err
	}
	return servers, nil
}
