// player/model.go
package player

import (
	"time"
)

// Status is a lookup table for staff statuses ("активен", "в отпуске", ...).
type Status struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Label string `json:"label" gorm:"unique;not null"`
}

// Position is a lookup table for staff positions ("Модератор", "Старший модератор", ...).
type Position struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"unique;not null"`
}

// Server is a lookup table for the game servers staff are assigned to.
type Server struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"unique;not null"`
}

// Player is a staff member tracked by the dashboard.
// UUID, when present, is the join key against the external panel and must be
// unique across players.
type Player struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Nickname      string     `json:"nickname" gorm:"not null"`
	UUID          *string    `json:"uuid,omitempty" gorm:"uniqueIndex"`
	StatusID      *uint      `json:"statusId"`
	Status        *Status    `json:"status,omitempty"`
	PositionID    *uint      `json:"positionId"`
	Position      *Position  `json:"position,omitempty"`
	ServerID      *uint      `json:"serverId"`
	Server        *Server    `json:"server,omitempty"`
	VacationStart *time.Time `json:"vacationStart,omitempty"`
	VacationEnd   *time.Time `json:"vacationEnd,omitempty"`
	Comment       *string    `json:"comment,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// CreatePlayerInput is the body of POST /api/players.
type CreatePlayerInput struct {
	Nickname   string  `json:"nickname" binding:"required"`
	UUID       *string `json:"uuid,omitempty"`
	StatusID   *uint   `json:"statusId" binding:"required"`
	PositionID *uint   `json:"positionId" binding:"required"`
	ServerID   *uint   `json:"serverId" binding:"required"`
}

// UpdatePlayerInput is the body of PUT /api/players/:id. Dates are calendar
// days in YYYY-MM-DD; an empty vacationEnd with a set vacationStart means an
// open-ended vacation.
type UpdatePlayerInput struct {
	Nickname      string  `json:"nickname" binding:"required"`
	UUID          *string `json:"uuid,omitempty"`
	StatusID      *uint   `json:"statusId" binding:"required"`
	PositionID    *uint   `json:"positionId" binding:"required"`
	ServerID      *uint   `json:"serverId,omitempty"`
	VacationStart *string `json:"vacationStart,omitempty"`
	VacationEnd   *string `json:"vacationEnd,omitempty"`
	Comment       *string `json:"comment,omitempty"`
}
