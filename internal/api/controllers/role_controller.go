package controllers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type RoleController struct {
	roleService services.RoleServiceInterface
	paging      Paging
}

func NewRoleController(roleService services.RoleServiceInterface, paging Paging) *RoleController {
	return &RoleController{roleService: roleService, paging: paging}
}

func roleResponse(r db_models.Role) response_models.RoleResponse {
	return response_models.NewRoleResponse(&r)
}

// ListRoles godoc
// @Summary List roles
// @Tags Roles
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.RoleResponse]}
// @Security BearerAuth
// @Router /v1/roles [get]
func (r *RoleController) ListRoles(c *gin.Context) {
	p, ok := bindPage(c, r.paging)
	if !ok {
		return
	}

	roles, total, err := r.roleService.FindAll(c.Request.Context(), p)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(roles, total, roleResponse), "Roles fetched successfully")
}

// GetRole godoc
// @Summary Get a role
// @Tags Roles
// @Produce json
// @Param id path string true "Role id"
// @Param populate query bool false "Include permissions"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/roles/{id} [get]
func (r *RoleController) GetRole(c *gin.Context) {
	populate, _ := strconv.ParseBool(c.DefaultQuery("populate", "false"))

	role, err := r.roleService.FindOne(c.Request.Context(), c.Param("id"), populate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewRoleResponse(role), "Role fetched successfully")
}

// CreateRole godoc
// @Summary Create a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param request body request_models.CreateRoleRequest true "Role"
// @Success 201 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/roles [post]
func (r *RoleController) CreateRole(c *gin.Context) {
	var req request_models.CreateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role, err := r.roleService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewRoleResponse(role), "Role created successfully")
}

// UpdateRole godoc
// @Summary Rename a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.UpdateRoleNameRequest true "Role"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/roles/{id} [put]
func (r *RoleController) UpdateRole(c *gin.Context) {
	var req request_models.UpdateRoleNameRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")

	role, err := r.roleService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewRoleResponse(role), "Role updated successfully")
}

// DeleteRole godoc
// @Summary Delete a role
// @Description Accounts pointing at the role keep their role id.
// @Tags Roles
// @Produce json
// @Param id path string true "Role id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/roles/{id} [delete]
func (r *RoleController) DeleteRole(c *gin.Context) {
	if err := r.roleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Role deleted successfully")
}

type roleMutation func(ctx context.Context, id string, ids []string) (*db_models.Role, error)

// members binds a list of ids and applies mutate to the role in the path.
func (r *RoleController) members(mutate roleMutation, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request_models.RoleMembersRequest
		if !bindJSON(c, &req) {
			return
		}

		role, err := mutate(c.Request.Context(), c.Param("id"), req.IDs)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondSuccess(c, response_models.NewRoleResponse(role), message)
	}
}

// AddAdmins godoc
// @Summary Add admins to a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RoleMembersRequest true "Admin ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Security BearerAuth
// @Router /v1/roles/{id}/admins [post]
func (r *RoleController) AddAdmins(c *gin.Context) {
	r.members(r.roleService.AddAdmins, "Admins added to role")(c)
}

// RemoveAdmins godoc
// @Summary Remove admins from a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RoleMembersRequest true "Admin ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Security BearerAuth
// @Router /v1/roles/{id}/admins [delete]
func (r *RoleController) RemoveAdmins(c *gin.Context) {
	r.members(r.roleService.RemoveAdmins, "Admins removed from role")(c)
}

// AddOrganizers godoc
// @Summary Add organizers to a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RoleMembersRequest true "Organizer ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Security BearerAuth
// @Router /v1/roles/{id}/organizers [post]
func (r *RoleController) AddOrganizers(c *gin.Context) {
	r.members(r.roleService.AddOrganizers, "Organizers added to role")(c)
}

// RemoveOrganizers godoc
// @Summary Remove organizers from a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RoleMembersRequest true "Organizer ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Security BearerAuth
// @Router /v1/roles/{id}/organizers [delete]
func (r *RoleController) RemoveOrganizers(c *gin.Context) {
	r.members(r.roleService.RemoveOrganizers, "Organizers removed from role")(c)
}

// AddUsers godoc
// @Summary Add users to a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RoleMembersRequest true "User ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Security BearerAuth
// @Router /v1/roles/{id}/users [post]
func (r *RoleController) AddUsers(c *gin.Context) {
	r.members(r.roleService.AddUsers, "Users added to role")(c)
}

// RemoveUsers godoc
// @Summary Remove users from a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RoleMembersRequest true "User ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Security BearerAuth
// @Router /v1/roles/{id}/users [delete]
func (r *RoleController) RemoveUsers(c *gin.Context) {
	r.members(r.roleService.RemoveUsers, "Users removed from role")(c)
}

func (r *RoleController) permissions(mutate roleMutation, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request_models.RolePermissionsRequest
		if !bindJSON(c, &req) {
			return
		}

		role, err := mutate(c.Request.Context(), c.Param("id"), req.PermissionIDs)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondSuccess(c, response_models.NewRoleResponse(role), message)
	}
}

// AddPermissions godoc
// @Summary Grant permissions to a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RolePermissionsRequest true "Permission ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/roles/{id}/permissions [post]
func (r *RoleController) AddPermissions(c *gin.Context) {
	r.permissions(r.roleService.AddPermissions, "Permissions granted")(c)
}

// RemovePermissions godoc
// @Summary Revoke permissions from a role
// @Tags Roles
// @Accept json
// @Produce json
// @Param id path string true "Role id"
// @Param request body request_models.RolePermissionsRequest true "Permission ids"
// @Success 200 {object} utils.APIResponse{data=response_models.RoleResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/roles/{id}/permissions [delete]
func (r *RoleController) RemovePermissions(c *gin.Context) {
	r.permissions(r.roleService.RemovePermissions, "Permissions revoked")(c)
}
