package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/service"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	IsStaff bool   `json:"is_staff"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON")
		return
	}

	user := &model.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsStaff:   req.IsStaff,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}

	if err := c.AuthService.Register(user, req.Password); err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyRegistered):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "invalid JSON")
		return
	}

	token, isStaff, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Error(ctx, http.StatusUnauthorized, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, LoginResponse{Token: token, IsStaff: isStaff})
}

// Validate answers {valid: bool} and never errors on an absent or
// unknown token.
func (c *AuthController) Validate(ctx *gin.Context) {
	valid, err := c.AuthService.Validate(ctx.Query("token"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"valid": valid})
}

// Me resolves a token to its identity record. This is the endpoint the
// user and quiz services call before authorizing anything.
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.AuthService.Resolve(ctx.Query("token"))
	if err != nil {
		if errors.Is(err, util.ErrUnauthorized) {
			util.Unauthorized(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"username":   user.Username,
		"email":      user.EmailOrEmpty(),
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"is_staff":   user.IsStaff,
	})
}
