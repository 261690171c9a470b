package player

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Anasikus/time-tracker/config"
	"github.com/Anasikus/time-tracker/pkg/utils"
	"github.com/Anasikus/time-tracker/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetAllPlayers godoc
// @Summary List all players
// @Description Get every player with status, position, server and vacation fields
// @Tags players
// @Produce json
// @Success 200 {array} Player "List of players"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players [get]
func (c *PlayerController) GetAllPlayers(ctx *gin.Context) {
	players, err := c.repo.GetAllPlayers()
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to get players: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, players)
}

// GetPlayerByID godoc
// @Summary Get player by ID
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} Player "Player details"
// @Failure 400 {object} utils.ErrorResponse "Invalid player ID"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/{id} [get]
func (c *PlayerController) GetPlayerByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid player ID")
		return
	}

	p, err := c.repo.GetPlayerByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			utils.NotFoundJSON(ctx, "player")
		} else {
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to get player: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// CreatePlayer godoc
// @Summary Create a new player
// @Description Create a player with required nickname, status, position and server
// @Tags players
// @Accept json
// @Produce json
// @Param player body CreatePlayerInput true "Player information"
// @Success 201 {object} Player "Player created successfully"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} utils.ErrorResponse "UUID already in use"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players [post]
// @Security Bearer
func (c *PlayerController) CreatePlayer(ctx *gin.Context) {
	var input CreatePlayerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "invalid player payload", validator.ParseError(err))
		return
	}

	if strings.TrimSpace(input.Nickname) == "" {
		utils.BadRequestJSON(ctx, "nickname must not be empty")
		return
	}

	p := &Player{
		Nickname:   strings.TrimSpace(input.Nickname),
		UUID:       normalizeUUID(input.UUID),
		StatusID:   input.StatusID,
		PositionID: input.PositionID,
		ServerID:   input.ServerID,
	}

	if err := c.repo.CreatePlayer(p); err != nil {
		if isDuplicateErr(err) {
			utils.ConflictJSON(ctx, "a player with this uuid already exists")
			return
		}
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to create player: "+err.Error())
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// UpdatePlayer godoc
// @Summary Update player
// @Description Update a player's profile, including the vacation window and comment
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body UpdatePlayerInput true "Updated player information"
// @Success 200 {object} Player "Player updated successfully"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Failure 409 {object} utils.ErrorResponse "UUID already in use"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/{id} [put]
// @Security Bearer
func (c *PlayerController) UpdatePlayer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid player ID")
		return
	}

	var input UpdatePlayerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "invalid player payload", validator.ParseError(err))
		return
	}

	if strings.TrimSpace(input.Nickname) == "" {
		utils.BadRequestJSON(ctx, "nickname must not be empty")
		return
	}

	vacationStart, err := parseOptionalDate(input.VacationStart)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid vacationStart, expected YYYY-MM-DD")
		return
	}
	vacationEnd, err := parseOptionalDate(input.VacationEnd)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid vacationEnd, expected YYYY-MM-DD")
		return
	}
	if vacationStart != nil && vacationEnd != nil && vacationEnd.Before(*vacationStart) {
		utils.BadRequestJSON(ctx, "vacationEnd must not be before vacationStart")
		return
	}

	p, err := c.repo.GetPlayerByID(uint(id))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			utils.NotFoundJSON(ctx, "player")
		} else {
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to get player: "+err.Error())
		}
		return
	}

	p.Nickname = strings.TrimSpace(input.Nickname)
	p.UUID = normalizeUUID(input.UUID)
	p.StatusID = input.StatusID
	p.PositionID = input.PositionID
	p.ServerID = input.ServerID
	p.VacationStart = vacationStart
	p.VacationEnd = vacationEnd
	p.Comment = input.Comment

	if err := c.repo.UpdatePlayer(p); err != nil {
		if isDuplicateErr(err) {
			utils.ConflictJSON(ctx, "a player with this uuid already exists")
			return
		}
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to update player: "+err.Error())
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// DeletePlayer godoc
// @Summary Delete player
// @Description Delete a player together with all of its time logs
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} utils.SuccessResponse "Player deleted successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid player ID"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/{id} [delete]
// @Security Bearer
func (c *PlayerController) DeletePlayer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid player ID")
		return
	}

	if err := c.repo.DeletePlayer(uint(id)); err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			utils.NotFoundJSON(ctx, "player")
		} else {
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to delete player: "+err.Error())
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "player deleted successfully", nil)
}

// GetStatuses godoc
// @Summary List statuses
// @Tags players
// @Produce json
// @Success 200 {array} Status
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/statuses [get]
func (c *PlayerController) GetStatuses(ctx *gin.Context) {
	statuses, err := c.repo.GetStatuses()
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to get statuses: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, statuses)
}

// GetPositions godoc
// @Summary List positions
// @Tags players
// @Produce json
// @Success 200 {array} Position
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/positions [get]
func (c *PlayerController) GetPositions(ctx *gin.Context) {
	positions, err := c.repo.GetPositions()
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to get positions: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, positions)
}

// GetServers godoc
// @Summary List servers
// @Tags players
// @Produce json
// @Success 200 {array} Server
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/servers [get]
func (c *PlayerController) GetServers(ctx *gin.Context) {
	servers, err := c.repo.GetServers()
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to get servers: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, servers)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func normalizeUUID(uuid *string) *string {
	if uuid == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*uuid)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
