package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
	paging       Paging
}

func NewAdminController(adminService services.AdminServiceInterface, paging Paging) *AdminController {
	return &AdminController{adminService: adminService, paging: paging}
}

func adminResponse(a db_models.Admin) response_models.AdminResponse {
	return response_models.NewAdminResponse(&a)
}

// Me godoc
// @Summary Current admin profile
// @Tags Admins
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.AdminResponse}
// @Security BearerAuth
// @Router /v1/admins/me [get]
func (a *AdminController) Me(c *gin.Context) {
	admin, err := a.adminService.FindOne(c.Request.Context(), currentAccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAdminResponse(admin), "Profile fetched successfully")
}

// UpdateMe godoc
// @Summary Update the current admin profile
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request_models.UpdateAdminRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.AdminResponse}
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/admins/me [put]
func (a *AdminController) UpdateMe(c *gin.Context) {
	a.update(c, currentAccountID(c))
}

// UpdateMyPassword godoc
// @Summary Change the current admin password
// @Tags Admins
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePasswordRequest true "Old and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/admins/me/password [put]
func (a *AdminController) UpdateMyPassword(c *gin.Context) {
	var req request_models.UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = currentAccountID(c)

	if _, err := a.adminService.UpdatePassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}

// ListAdmins godoc
// @Summary List admins
// @Tags Admin management
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.AdminResponse]}
// @Security BearerAuth
// @Router /v1/managements/admins [get]
func (a *AdminController) ListAdmins(c *gin.Context) {
	p, ok := bindPage(c, a.paging)
	if !ok {
		return
	}

	admins, total, err := a.adminService.FindAll(c.Request.Context(), p)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(admins, total, adminResponse), "Admins fetched successfully")
}

// GetAdmin godoc
// @Summary Get an admin
// @Tags Admin management
// @Produce json
// @Param id path string true "Admin id"
// @Success 200 {object} utils.APIResponse{data=response_models.AdminResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/admins/{id} [get]
func (a *AdminController) GetAdmin(c *gin.Context) {
	admin, err := a.adminService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAdminResponse(admin), "Admin fetched successfully")
}

// CreateAdmin godoc
// @Summary Create an admin
// @Description Without role_id the configured default admin role is used.
// @Tags Admin management
// @Accept json
// @Produce json
// @Param request body request_models.CreateAdminRequest true "Admin"
// @Success 201 {object} utils.APIResponse{data=response_models.AdminResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/admins [post]
func (a *AdminController) CreateAdmin(c *gin.Context) {
	var req request_models.CreateAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	admin, err := a.adminService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewAdminResponse(admin), "Admin created successfully")
}

// UpdateAdmin godoc
// @Summary Update an admin
// @Tags Admin management
// @Accept json
// @Produce json
// @Param id path string true "Admin id"
// @Param request body request_models.UpdateAdminRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.AdminResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/admins/{id} [put]
func (a *AdminController) UpdateAdmin(c *gin.Context) {
	a.update(c, c.Param("id"))
}

func (a *AdminController) update(c *gin.Context, id string) {
	var req request_models.UpdateAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	admin, err := a.adminService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAdminResponse(admin), "Admin updated successfully")
}

// UpdateAdminRole godoc
// @Summary Move an admin to another role
// @Tags Admin management
// @Accept json
// @Produce json
// @Param id path string true "Admin id"
// @Param request body request_models.UpdateRoleRequest true "Target role"
// @Success 200 {object} utils.APIResponse{data=response_models.AdminResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/admins/{id}/role [put]
func (a *AdminController) UpdateAdminRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")

	admin, err := a.adminService.UpdateRole(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAdminResponse(admin), "Admin role updated successfully")
}
