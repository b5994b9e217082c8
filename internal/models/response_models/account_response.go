package response_models

import "eventmanager/internal/models/db_models"

type TokenResponse struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
}

type ResetTokenStatusResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

type AdminResponse struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Email     string       `json:"email"`
	RoleID    string       `json:"role_id"`
	Role      *RoleSummary `json:"role,omitempty"`
	CreatedAt int64        `json:"created_at"`
	UpdatedAt int64        `json:"updated_at"`
}

type PhoneNumberResponse struct {
	Phone       string `json:"phone"`
	Value       string `json:"value"`
	IsoCode     string `json:"iso_code"`
	CountryCode string `json:"country_code"`
}

type OrganizerResponse struct {
	ID             string              `json:"id"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	Email          string              `json:"email"`
	CompanyName    string              `json:"company_name"`
	CompanyAddress string              `json:"company_address"`
	CompanyArea    string              `json:"company_area"`
	CompanyNumber  PhoneNumberResponse `json:"company_number"`
	RoleID         string              `json:"role_id"`
	Role           *RoleSummary        `json:"role,omitempty"`
	CreatedAt      int64               `json:"created_at"`
	UpdatedAt      int64               `json:"updated_at"`
}

type UserResponse struct {
	ID        string       `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	RoleID    string       `json:"role_id"`
	Role      *RoleSummary `json:"role,omitempty"`
	CreatedAt int64        `json:"created_at"`
	UpdatedAt int64        `json:"updated_at"`
}

func NewAdminResponse(a *db_models.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		Email:     a.Email,
		RoleID:    a.RoleID.String(),
		Role:      newRoleSummary(a.Role),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewOrganizerResponse(o *db_models.Organizer) OrganizerResponse {
	return OrganizerResponse{
		ID:             o.ID.String(),
		FirstName:      o.FirstName,
		LastName:       o.LastName,
		Email:          o.Email,
		CompanyName:    o.CompanyName,
		CompanyAddress: o.CompanyAddress,
		CompanyArea:    o.CompanyArea,
		CompanyNumber: PhoneNumberResponse{
			Phone:       o.CompanyNumber.Phone,
			Value:       o.CompanyNumber.Value,
			IsoCode:     o.CompanyNumber.IsoCode,
			CountryCode: o.CompanyNumber.CountryCode,
		},
		RoleID:    o.RoleID.String(),
		Role:      newRoleSummary(o.Role),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func NewUserResponse(u *db_models.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		RoleID:    u.RoleID.String(),
		Role:      newRoleSummary(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
