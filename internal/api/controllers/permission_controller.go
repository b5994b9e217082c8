package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type PermissionController struct {
	permissionService services.PermissionServiceInterface
	paging            Paging
}

func NewPermissionController(permissionService services.PermissionServiceInterface, paging Paging) *PermissionController {
	return &PermissionController{permissionService: permissionService, paging: paging}
}

// ListPermissions godoc
// @Summary List permissions
// @Tags Permissions
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.PermissionResponse]}
// @Security BearerAuth
// @Router /v1/permissions [get]
func (p *PermissionController) ListPermissions(c *gin.Context) {
	page, ok := bindPage(c, p.paging)
	if !ok {
		return
	}

	permissions, total, err := p.permissionService.FindAll(c.Request.Context(), page)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(permissions, total, func(perm db_models.Permission) response_models.PermissionResponse {
		return response_models.NewPermissionResponse(&perm)
	}), "Permissions fetched successfully")
}

// GetPermission godoc
// @Summary Get a permission
// @Tags Permissions
// @Produce json
// @Param id path string true "Permission id"
// @Success 200 {object} utils.APIResponse{data=response_models.PermissionResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/permissions/{id} [get]
func (p *PermissionController) GetPermission(c *gin.Context) {
	permission, err := p.permissionService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPermissionResponse(permission), "Permission fetched successfully")
}

// CreatePermission godoc
// @Summary Create a permission
// @Tags Permissions
// @Accept json
// @Produce json
// @Param request body request_models.CreatePermissionRequest true "Permission"
// @Success 201 {object} utils.APIResponse{data=response_models.PermissionResponse}
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/permissions [post]
func (p *PermissionController) CreatePermission(c *gin.Context) {
	var req request_models.CreatePermissionRequest
	if !bindJSON(c, &req) {
		return
	}

	permission, err := p.permissionService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewPermissionResponse(permission), "Permission created successfully")
}

// DeletePermission godoc
// @Summary Delete a permission
// @Description The permission is revoked from every role first.
// @Tags Permissions
// @Produce json
// @Param id path string true "Permission id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/permissions/{id} [delete]
func (p *PermissionController) DeletePermission(c *gin.Context) {
	if err := p.permissionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Permission deleted successfully")
}
