package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type EventTypeController struct {
	eventTypeService services.EventTypeServiceInterface
	paging           Paging
}

func NewEventTypeController(eventTypeService services.EventTypeServiceInterface, paging Paging) *EventTypeController {
	return &EventTypeController{eventTypeService: eventTypeService, paging: paging}
}

// ListEventTypes godoc
// @Summary List event types
// @Tags Event types
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.EventTypeResponse]}
// @Security BearerAuth
// @Router /v1/managements/events-types [get]
func (e *EventTypeController) ListEventTypes(c *gin.Context) {
	p, ok := bindPage(c, e.paging)
	if !ok {
		return
	}

	types, total, err := e.eventTypeService.FindAll(c.Request.Context(), p)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(types, total, func(t db_models.EventType) response_models.EventTypeResponse {
		return response_models.NewEventTypeResponse(&t)
	}), "Event types fetched successfully")
}

// GetEventType godoc
// @Summary Get an event type
// @Tags Event types
// @Produce json
// @Param id path string true "Event type id"
// @Success 200 {object} utils.APIResponse{data=response_models.EventTypeResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events-types/{id} [get]
func (e *EventTypeController) GetEventType(c *gin.Context) {
	eventType, err := e.eventTypeService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventTypeResponse(eventType), "Event type fetched successfully")
}

// CreateEventType godoc
// @Summary Create an event type
// @Tags Event types
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventTypeRequest true "Event type"
// @Success 201 {object} utils.APIResponse{data=response_models.EventTypeResponse}
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events-types [post]
func (e *EventTypeController) CreateEventType(c *gin.Context) {
	var req request_models.CreateEventTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	eventType, err := e.eventTypeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewEventTypeResponse(eventType), "Event type created successfully")
}

// UpdateEventType godoc
// @Summary Rename an event type
// @Tags Event types
// @Accept json
// @Produce json
// @Param id path string true "Event type id"
// @Param request body request_models.UpdateEventTypeRequest true "Event type"
// @Success 200 {object} utils.APIResponse{data=response_models.EventTypeResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events-types/{id} [put]
func (e *EventTypeController) UpdateEventType(c *gin.Context) {
	var req request_models.UpdateEventTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")

	eventType, err := e.eventTypeService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventTypeResponse(eventType), "Event type updated successfully")
}

// DeleteEventType godoc
// @Summary Delete an event type
// @Tags Event types
// @Produce json
// @Param id path string true "Event type id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events-types/{id} [delete]
func (e *EventTypeController) DeleteEventType(c *gin.Context) {
	if err := e.eventTypeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event type deleted successfully")
}
