package request_models

type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64"`
}

type UpdateRoleNameRequest struct {
	ID   string `json:"-"`
	Name string `json:"name" binding:"required,min=2,max=64"`
}

type RoleMembersRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

type RolePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" binding:"required,min=1,dive,uuid"`
}

type CreatePermissionRequest struct {
	Name string `json:"name" binding:"required,min=2,max=64"`
}
