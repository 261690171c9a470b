package moderation

import (
	"net/http"
	"time"

	"github.com/Anasikus/time-tracker/config"
	"github.com/Anasikus/time-tracker/pkg/utils"
	"github.com/Anasikus/time-tracker/pkg/validator"
	"github.com/gin-gonic/gin"
)

const monthLayout = "2006-01"

// ModerationController handles moderation counter HTTP requests
type ModerationController struct {
	repo      ModerationRepository
	appConfig *config.Config
}

// NewModerationController creates a new moderation controller
func NewModerationController(repo ModerationRepository, appConfig *config.Config) *ModerationController {
	return &ModerationController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// GetStats godoc
// @Summary Moderation counters for a month
// @Tags moderation
// @Produce json
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} StatRow
// @Failure 400 {object} utils.ErrorResponse "Invalid month"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /moderation [get]
func (c *ModerationController) GetStats(ctx *gin.Context) {
	month, err := parseMonth(ctx.Query("month"))
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid month, expected YYYY-MM")
		return
	}

	rows, err := c.repo.GetStatsForMonth(month)
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to load moderation stats: "+err.Error())
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// SaveStat godoc
// @Summary Save a player's counters for a month
// @Description Idempotent upsert keyed by (playerId, month)
// @Tags moderation
// @Accept json
// @Produce json
// @Param stat body SaveStatInput true "Moderation counters"
// @Success 200 {object} ModerationStat
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /moderation [post]
// @Security Bearer
func (c *ModerationController) SaveStat(ctx *gin.Context) {
	var input SaveStatInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "invalid moderation payload", validator.ParseError(err))
		return
	}

	month, err := parseMonth(input.Month)
	if err != nil {
		utils.BadRequestJSON(ctx, "invalid month, expected YYYY-MM")
		return
	}
	if input.Complaints < 0 || input.Appeals < 0 || input.ModComplaints < 0 || input.Trainees < 0 || input.Moderators < 0 {
		utils.BadRequestJSON(ctx, "counters must not be negative")
		return
	}

	stat := &ModerationStat{
		PlayerID:      input.PlayerID,
		Month:         month,
		Complaints:    input.Complaints,
		Appeals:       input.Appeals,
		ModComplaints: input.ModComplaints,
		Trainees:      input.Trainees,
		Moderators:    input.Moderators,
	}
	if err := c.repo.UpsertStat(stat); err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to save moderation stats: "+err.Error())
		return
	}

	ctx.JSON(http.StatusOK, stat)
}

// GetPlayers godoc
// @Summary Player id + nickname listing for the moderation table
// @Tags moderation
// @Produce json
// @Success 200 {array} PlayerRef
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /moderation/players [get]
func (c *ModerationController) GetPlayers(ctx *gin.Context) {
	refs, err := c.repo.GetPlayerRefs()
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to load players: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, refs)
}

// parseMonth accepts YYYY-MM and, for compatibility with the older client,
// YYYY-MM-DD (the day is dropped).
func parseMonth(s string) (time.Time, error) {
	if t, err := time.Parse(monthLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}
