package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
}

func NewAuthController(authService services.AuthServiceInterface) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Login
// @Description Authenticate an organizer (email), an admin (username) or a user (email) and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse{data=response_models.TokenResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /v1/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := a.authService.Authenticate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a password reset link to the account holding the email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ForgotPasswordRequest true "Forgot password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /v1/auth/forgot-password [post]
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.authService.SendResetPasswordEmail(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "A reset link has been sent")
}

// ResetPasswordStatus godoc
// @Summary Check a reset token
// @Tags Auth
// @Produce json
// @Param token query string true "Reset token"
// @Success 200 {object} utils.APIResponse{data=response_models.ResetTokenStatusResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /v1/auth/reset-password [get]
func (a *AuthController) ResetPasswordStatus(c *gin.Context) {
	account, err := a.authService.VerifyResetToken(c.Request.Context(), c.Query("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ResetTokenStatusResponse{
		Valid: true,
		Email: account.Base().Email,
	}, "Reset token is valid")
}

// ResetPassword godoc
// @Summary Reset a password
// @Description Sets a new password using a reset token. The token can be used once.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordWithTokenRequest true "Reset payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /v1/auth/reset-password [post]
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordWithTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := a.authService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}
