package playtime

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Anasikus/time-tracker/config"
	"github.com/Anasikus/time-tracker/internal/panel"
	"github.com/Anasikus/time-tracker/pkg/utils"
	"github.com/Anasikus/time-tracker/pkg/validator"
	"github.com/gin-gonic/gin"
)

// PanelTokenHeader carries the panel API token for sync requests. It is
// separate from Authorization, which holds the dashboard's own JWT.
const PanelTokenHeader = "X-Panel-Token"

// PlaytimeController handles playtime-related HTTP requests
type PlaytimeController struct {
	repo       TimeLogRepository
	aggregator *Aggregator
	sync       *SyncService
	appConfig  *config.Config
}

// NewPlaytimeController creates a new playtime controller
func NewPlaytimeController(repo TimeLogRepository, aggregator *Aggregator, sync *SyncService, appConfig *config.Config) *PlaytimeController {
	return &PlaytimeController{
		repo:       repo,
		aggregator: aggregator,
		sync:       sync,
		appConfig:  appConfig,
	}
}

// GetPlaytimeForRange godoc
// @Summary Playtime for a date range
// @Description Get every player paired with its raw time log rows in [start, end]
// @Tags playtime
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} PlayerPlaytime
// @Failure 400 {object} utils.ErrorResponse "Invalid range"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /playtime [get]
func (c *PlaytimeController) GetPlaytimeForRange(ctx *gin.Context) {
	start, err := time.Parse(dateLayout, ctx.Query("start"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, ctx.Query("end"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid end date, expected YYYY-MM-DD")
		return
	}

	rows, err := c.aggregator.GetPlaytimeForRange(start, end)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			utils.BadRequestJSON(ctx, "start must not be after end")
		} else {
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to load playtime: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// AddPlaytime godoc
// @Summary Record one day's playtime
// @Description Idempotent upsert of a player's duration for a calendar day
// @Tags playtime
// @Accept json
// @Produce json
// @Param entry body AddPlaytimeInput true "Playtime entry"
// @Success 200 {object} TimeLog
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /playtime [post]
// @Security Bearer
func (c *PlaytimeController) AddPlaytime(ctx *gin.Context) {
	var input AddPlaytimeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "invalid playtime payload", validator.ParseError(err))
		return
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid date, expected YYYY-MM-DD")
		return
	}
	if *input.Duration < 0 {
		utils.BadRequestJSON(ctx, "duration must not be negative")
		return
	}

	log := &TimeLog{
		PlayerID: input.PlayerID,
		Date:     date,
		Duration: *input.Duration,
	}
	if err := c.repo.Upsert(log); err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to save playtime: "+err.Error())
		return
	}

	ctx.JSON(http.StatusOK, log)
}

// GetPlaytimeByDate godoc
// @Summary Single day's playtime
// @Tags playtime
// @Produce json
// @Param playerId query int true "Player ID"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Success 200 {object} TimeLog
// @Failure 400 {object} utils.ErrorResponse "Invalid parameters"
// @Failure 404 {object} utils.ErrorResponse "No entry for that day"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /playtime/date [get]
func (c *PlaytimeController) GetPlaytimeByDate(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Query("playerId"), 10, 32)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid playerId")
		return
	}
	date, err := time.Parse(dateLayout, ctx.Query("date"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid date, expected YYYY-MM-DD")
		return
	}

	log, err := c.repo.GetByPlayerAndDate(uint(playerID), date)
	if err != nil {
		if errors.Is(err, ErrTimeLogNotFound) {
			utils.NotFoundJSON(ctx, "time log")
		} else {
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to load playtime: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, log)
}

// GetMonthSummary godoc
// @Summary Classified month view
// @Description Per-day categories and week-bucket totals with role-aware weekly thresholds
// @Tags playtime
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} PlayerMonthSummary
// @Failure 400 {object} utils.ErrorResponse "Invalid month"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /playtime/month [get]
func (c *PlaytimeController) GetMonthSummary(ctx *gin.Context) {
	month, err := time.Parse("2006-01", ctx.Query("month"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid month, expected YYYY-MM")
		return
	}

	summaries, err := c.aggregator.MonthSummary(month.Year(), month.Month(), time.Now().UTC())
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to build month summary: "+err.Error())
		return
	}

	ctx.JSON(http.StatusOK, summaries)
}

// SyncPlaytime godoc
// @Summary Sync playtime from the panel
// @Description Pull online time for every player with a uuid and upsert it per (player, date). All-or-nothing; re-trigger manually on failure.
// @Tags playtime
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param preview query bool false "Return candidates without writing"
// @Param X-Panel-Token header string true "Panel API token"
// @Success 200 {object} SyncResult
// @Failure 400 {object} utils.ErrorResponse "Invalid parameters"
// @Failure 401 {object} utils.ErrorResponse "Panel rejected the token"
// @Failure 502 {object} utils.ErrorResponse "Panel unavailable"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /playtime/sync [post]
// @Security Bearer
func (c *PlaytimeController) SyncPlaytime(ctx *gin.Context) {
	start, err := time.Parse(dateLayout, ctx.Query("start"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, ctx.Query("end"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid end date, expected YYYY-MM-DD")
		return
	}
	preview := false
	if previewStr := ctx.Query("preview"); previewStr != "" {
		preview, err = strconv.ParseBool(previewStr)
		if err != nil {
			utils.BadRequestJSON(ctx, "invalid preview parameter")
			return
		}
	}

	panelToken := ctx.GetHeader(PanelTokenHeader)
	if panelToken == "" {
		utils.BadRequestJSON(ctx, PanelTokenHeader+" header is required")
		return
	}

	result, err := c.sync.SyncRange(ctx.Request.Context(), start, end, panelToken, preview)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRange):
			utils.BadRequestJSON(ctx, "start must not be after end")
		case errors.Is(err, panel.ErrUnauthorized):
			utils.ErrorJSON(ctx, http.StatusUnauthorized, utils.CodeUpstreamUnauthorized, "panel rejected the token")
		case errors.Is(err, panel.ErrUnavailable):
			utils.ErrorJSON(ctx, http.StatusBadGateway, utils.CodeUpstreamUnavailable, "panel unavailable: "+err.Error())
		default:
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "sync failed: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}
