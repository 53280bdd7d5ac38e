package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/middleware"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/service"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

type ScoreUpdateRequest struct {
	ScoreIncrement int `json:"score_increment"`
}

type ScoreUpdateResponse struct {
	Username  string `json:"username"`
	Score     int    `json:"score"`
	Increment int    `json:"increment"`
}

// List is staff-only; the route gates it behind the staff middleware.
func (c *ProfileController) List(ctx *gin.Context) {
	profiles, err := c.ProfileService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profiles)
}

func (c *ProfileController) Get(ctx *gin.Context) {
	profile, err := c.ProfileService.Get(ctx.Param("username"))
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func (c *ProfileController) AdjustScore(ctx *gin.Context) {
	var req ScoreUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON")
		return
	}

	caller := middleware.GetIdentity(ctx)
	profile, err := c.ProfileService.AdjustScore(caller, ctx.Param("username"), req.ScoreIncrement)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUnauthorized):
			util.Unauthorized(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Error(ctx, http.StatusForbidden, "you can only update your own score")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, ScoreUpdateResponse{
		Username:  profile.Username,
		Score:     profile.Score,
		Increment: req.ScoreIncrement,
	})
}
