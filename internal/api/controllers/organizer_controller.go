package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type OrganizerController struct {
	organizerService services.OrganizerServiceInterface
	paging           Paging
}

func NewOrganizerController(organizerService services.OrganizerServiceInterface, paging Paging) *OrganizerController {
	return &OrganizerController{organizerService: organizerService, paging: paging}
}

func organizerResponse(org db_models.Organizer) response_models.OrganizerResponse {
	return response_models.NewOrganizerResponse(&org)
}

// Me godoc
// @Summary Current organizer profile
// @Tags Organizers
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.OrganizerResponse}
// @Security BearerAuth
// @Router /v1/organizers/me [get]
func (o *OrganizerController) Me(c *gin.Context) {
	organizer, err := o.organizerService.FindOne(c.Request.Context(), currentAccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewOrganizerResponse(organizer), "Profile fetched successfully")
}

// UpdateMe godoc
// @Summary Update the current organizer profile
// @Tags Organizers
// @Accept json
// @Produce json
// @Param request body request_models.UpdateOrganizerRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.OrganizerResponse}
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/organizers/me [put]
func (o *OrganizerController) UpdateMe(c *gin.Context) {
	o.update(c, currentAccountID(c))
}

// UpdateMyPassword godoc
// @Summary Change the current organizer password
// @Tags Organizers
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePasswordRequest true "Old and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/organizers/me/password [put]
func (o *OrganizerController) UpdateMyPassword(c *gin.Context) {
	var req request_models.UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = currentAccountID(c)

	if _, err := o.organizerService.UpdatePassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}

// ListOrganizers godoc
// @Summary List organizers
// @Tags Organizer management
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.OrganizerResponse]}
// @Security BearerAuth
// @Router /v1/managements/organizers [get]
func (o *OrganizerController) ListOrganizers(c *gin.Context) {
	p, ok := bindPage(c, o.paging)
	if !ok {
		return
	}

	organizers, total, err := o.organizerService.FindAll(c.Request.Context(), p)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(organizers, total, organizerResponse), "Organizers fetched successfully")
}

// GetOrganizer godoc
// @Summary Get an organizer
// @Tags Organizer management
// @Produce json
// @Param id path string true "Organizer id"
// @Success 200 {object} utils.APIResponse{data=response_models.OrganizerResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/organizers/{id} [get]
func (o *OrganizerController) GetOrganizer(c *gin.Context) {
	organizer, err := o.organizerService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewOrganizerResponse(organizer), "Organizer fetched successfully")
}

// CreateOrganizer godoc
// @Summary Create an organizer
// @Description Without role_id the configured default organizer role is used.
// @Tags Organizer management
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrganizerRequest true "Organizer"
// @Success 201 {object} utils.APIResponse{data=response_models.OrganizerResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/organizers [post]
func (o *OrganizerController) CreateOrganizer(c *gin.Context) {
	var req request_models.CreateOrganizerRequest
	if !bindJSON(c, &req) {
		return
	}

	organizer, err := o.organizerService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewOrganizerResponse(organizer), "Organizer created successfully")
}

// UpdateOrganizer godoc
// @Summary Update an organizer
// @Tags Organizer management
// @Accept json
// @Produce json
// @Param id path string true "Organizer id"
// @Param request body request_models.UpdateOrganizerRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.OrganizerResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/organizers/{id} [put]
func (o *OrganizerController) UpdateOrganizer(c *gin.Context) {
	o.update(c, c.Param("id"))
}

func (o *OrganizerController) update(c *gin.Context, id string) {
	var req request_models.UpdateOrganizerRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	organizer, err := o.organizerService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewOrganizerResponse(organizer), "Organizer updated successfully")
}

// UpdateOrganizerRole godoc
// @Summary Move an organizer to another role
// @Tags Organizer management
// @Accept json
// @Produce json
// @Param id path string true "Organizer id"
// @Param request body request_models.UpdateRoleRequest true "Target role"
// @Success 200 {object} utils.APIResponse{data=response_models.OrganizerResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/organizers/{id}/role [put]
func (o *OrganizerController) UpdateOrganizerRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")

	organizer, err := o.organizerService.UpdateRole(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewOrganizerResponse(organizer), "Organizer role updated successfully")
}
