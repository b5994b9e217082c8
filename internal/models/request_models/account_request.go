package request_models

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
	RoleID   string `json:"role_id" binding:"omitempty,uuid"`
}

type UpdateAdminRequest struct {
	ID       string  `json:"-"`
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

type PhoneNumberRequest struct {
	Phone       string `json:"phone" binding:"required,min=4,max=20,phone"`
	IsoCode     string `json:"iso_code" binding:"required,len=2"`
	CountryCode string `json:"country_code" binding:"required,max=5"`
}

type CreateOrganizerRequest struct {
	FirstName      string             `json:"first_name" binding:"required,max=100"`
	LastName       string             `json:"last_name" binding:"required,max=100"`
	Email          string             `json:"email" binding:"required,email"`
	Password       string             `json:"password" binding:"required,password"`
	CompanyName    string             `json:"company_name" binding:"required,max=200"`
	CompanyAddress string             `json:"company_address" binding:"required,max=300"`
	CompanyArea    string             `json:"company_area" binding:"required,max=100"`
	CompanyNumber  PhoneNumberRequest `json:"company_number" binding:"required"`
	RoleID         string             `json:"role_id" binding:"omitempty,uuid"`
}

type UpdateOrganizerRequest struct {
	ID             string              `json:"-"`
	FirstName      *string             `json:"first_name" binding:"omitempty,max=100"`
	LastName       *string             `json:"last_name" binding:"omitempty,max=100"`
	Email          *string             `json:"email" binding:"omitempty,email"`
	CompanyName    *string             `json:"company_name" binding:"omitempty,max=200"`
	CompanyAddress *string             `json:"company_address" binding:"omitempty,max=300"`
	CompanyArea    *string             `json:"company_area" binding:"omitempty,max=100"`
	CompanyNumber  *PhoneNumberRequest `json:"company_number" binding:"omitempty"`
}

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,password"`
	RoleID    string `json:"role_id" binding:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	ID        string  `json:"-"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// UpdateRoleRequest leaves role_id unrequired at binding time; the service
// reports a missing role id itself.
type UpdateRoleRequest struct {
	ID     string `json:"-"`
	RoleID string `json:"role_id" binding:"omitempty,uuid"`
}

type UpdatePasswordRequest struct {
	ID                   string `json:"-"`
	OldPassword          string `json:"old_password"`
	Password             string `json:"password" binding:"omitempty,password"`
	PasswordConfirmation string `json:"password_confirmation" binding:"eqfield=Password"`
}

// ResetPasswordRequest sets a new password without the old one. It is only
// built internally, after a reset token has been verified.
type ResetPasswordRequest struct {
	ID                     string
	Password               string
	ResetPasswordRequestID string
}
