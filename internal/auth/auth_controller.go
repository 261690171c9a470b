package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/Anasikus/time-tracker/config"
	"github.com/Anasikus/time-tracker/internal/middleware"
	"github.com/Anasikus/time-tracker/pkg/token"
	"github.com/Anasikus/time-tracker/pkg/utils"
	"github.com/Anasikus/time-tracker/pkg/validator"
	"github.com/gin-gonic/gin"
)

// AuthController handles admin authentication requests
type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchange admin credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse "Access token"
// @Failure 400 {object} utils.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Wrong username or password"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var input LoginRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "invalid login payload", validator.ParseError(err))
		return
	}

	user, err := c.repo.GetUserByUsername(input.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.ErrorJSON(ctx, http.StatusUnauthorized, utils.CodeUnauthorized, "wrong username or password")
		} else {
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to look up user: "+err.Error())
		}
		return
	}

	if !utils.CheckPassword(user.PasswordHash, input.Password) {
		utils.ErrorJSON(ctx, http.StatusUnauthorized, utils.CodeUnauthorized, "wrong username or password")
		return
	}

	jwt, err := token.GenerateJWT(user.ID, user.Username, c.appConfig.JWT.Secret, c.appConfig.JWT.ExpiryMinutes)
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to sign token")
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{Token: jwt, Username: user.Username})
}

// Me godoc
// @Summary Current admin profile
// @Tags auth
// @Produce json
// @Success 200 {object} AdminUser
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security Bearer
func (c *AuthController) Me(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	user, err := c.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.UnauthorizedJSON(ctx)
		} else {
			utils.ErrorJSON(ctx, http.StatusInternalServerError, utils.CodeStorage, "failed to look up user: "+err.Error())
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// SeedAdminUser creates the initial admin account from the environment when
// no admin exists yet. Skipped when ADMIN_PASSWORD is unset.
func SeedAdminUser(repo AuthRepository, appConfig *config.Config) error {
	count, err := repo.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if appConfig.Admin.Password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin account seeding.")
		return nil
	}

	hash, err := utils.HashPassword(appConfig.Admin.Password)
	if err != nil {
		return err
	}

	return repo.CreateUser(&AdminUser{
		Username:     appConfig.Admin.Username,
		PasswordHash: hash,
	})
}
