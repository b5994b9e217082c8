package request_models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordWithTokenRequest struct {
	Token                string `json:"token" binding:"required"`
	Password             string `json:"password" binding:"required,password"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}
