package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
	paging       Paging
}

func NewEventController(eventService services.EventServiceInterface, paging Paging) *EventController {
	return &EventController{eventService: eventService, paging: paging}
}

// ListEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.EventResponse]}
// @Security BearerAuth
// @Router /v1/managements/events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	p, ok := bindPage(c, e.paging)
	if !ok {
		return
	}

	events, total, err := e.eventService.FindAll(c.Request.Context(), p)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(events, total, func(ev db_models.Event) response_models.EventResponse {
		return response_models.NewEventResponse(&ev)
	}), "Events fetched successfully")
}

// GetEvent godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} utils.APIResponse{data=response_models.EventResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events/{id} [get]
func (e *EventController) GetEvent(c *gin.Context) {
	event, err := e.eventService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponse(event), "Event fetched successfully")
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event"
// @Success 201 {object} utils.APIResponse{data=response_models.EventResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := e.eventService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewEventResponse(event), "Event created successfully")
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param request body request_models.UpdateEventRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.EventResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events/{id} [put]
func (e *EventController) UpdateEvent(c *gin.Context) {
	var req request_models.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")

	event, err := e.eventService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventResponse(event), "Event updated successfully")
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events/{id} [delete]
func (e *EventController) DeleteEvent(c *gin.Context) {
	if err := e.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
