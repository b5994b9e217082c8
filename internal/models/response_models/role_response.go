package response_models

import "eventmanager/internal/models/db_models"

type RoleSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PermissionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

type RoleResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Permissions  []PermissionResponse `json:"permissions,omitempty"`
	AdminIDs     []string             `json:"admin_ids"`
	OrganizerIDs []string             `json:"organizer_ids"`
	UserIDs      []string             `json:"user_ids"`
	CreatedAt    int64                `json:"created_at"`
	UpdatedAt    int64                `json:"updated_at"`
}

func newRoleSummary(r *db_models.Role) *RoleSummary {
	if r == nil {
		return nil
	}
	return &RoleSummary{ID: r.ID.String(), Name: r.Name}
}

func NewPermissionResponse(p *db_models.Permission) PermissionResponse {
	return PermissionResponse{ID: p.ID.String(), Name: p.Name, CreatedAt: p.CreatedAt}
}

func NewRoleResponse(r *db_models.Role) RoleResponse {
	resp := RoleResponse{
		ID:           r.ID.String(),
		Name:         r.Name,
		AdminIDs:     nonNil(r.AdminIDs),
		OrganizerIDs: nonNil(r.OrganizerIDs),
		UserIDs:      nonNil(r.UserIDs),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for i := range r.Permissions {
		resp.Permissions = append(resp.Permissions, NewPermissionResponse(&r.Permissions[i]))
	}
	return resp
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
