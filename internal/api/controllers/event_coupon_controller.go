package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type EventCouponController struct {
	couponService services.EventCouponServiceInterface
	paging        Paging
}

func NewEventCouponController(couponService services.EventCouponServiceInterface, paging Paging) *EventCouponController {
	return &EventCouponController{couponService: couponService, paging: paging}
}

// ListCoupons godoc
// @Summary List event coupons
// @Tags Event coupons
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.EventCouponResponse]}
// @Security BearerAuth
// @Router /v1/managements/events-coupon [get]
func (e *EventCouponController) ListCoupons(c *gin.Context) {
	p, ok := bindPage(c, e.paging)
	if !ok {
		return
	}

	coupons, total, err := e.couponService.FindAll(c.Request.Context(), p)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(coupons, total, func(ec db_models.EventCoupon) response_models.EventCouponResponse {
		return response_models.NewEventCouponResponse(&ec)
	}), "Event coupons fetched successfully")
}

// GetCoupon godoc
// @Summary Get an event coupon
// @Tags Event coupons
// @Produce json
// @Param id path string true "Coupon id"
// @Success 200 {object} utils.APIResponse{data=response_models.EventCouponResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events-coupon/{id} [get]
func (e *EventCouponController) GetCoupon(c *gin.Context) {
	coupon, err := e.couponService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventCouponResponse(coupon), "Event coupon fetched successfully")
}

// CreateCoupon godoc
// @Summary Create an event coupon
// @Description Generates the code and opens every seat of the formule.
// @Tags Event coupons
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventCouponRequest true "Coupon"
// @Success 201 {object} utils.APIResponse{data=response_models.EventCouponResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events-coupon [post]
func (e *EventCouponController) CreateCoupon(c *gin.Context) {
	var req request_models.CreateEventCouponRequest
	if !bindJSON(c, &req) {
		return
	}

	coupon, err := e.couponService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewEventCouponResponse(coupon), "Event coupon created successfully")
}

// UpdateCoupon godoc
// @Summary Set the available seats of a coupon
// @Tags Event coupons
// @Accept json
// @Produce json
// @Param id path string true "Coupon id"
// @Param request body request_models.UpdateEventCouponRequest true "Seats"
// @Success 200 {object} utils.APIResponse{data=response_models.EventCouponResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/events-coupon/{id} [put]
func (e *EventCouponController) UpdateCoupon(c *gin.Context) {
	var req request_models.UpdateEventCouponRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")

	coupon, err := e.couponService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewEventCouponResponse(coupon), "Event coupon updated successfully")
}
