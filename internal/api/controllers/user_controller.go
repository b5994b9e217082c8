package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/db_models"
	"eventmanager/internal/models/request_models"
	"eventmanager/internal/models/response_models"
	"eventmanager/internal/services"
	"eventmanager/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	paging      Paging
}

func NewUserController(userService services.UserServiceInterface, paging Paging) *UserController {
	return &UserController{userService: userService, paging: paging}
}

func userResponse(usr db_models.User) response_models.UserResponse {
	return response_models.NewUserResponse(&usr)
}

// Me godoc
// @Summary Current user profile
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Security BearerAuth
// @Router /v1/users/me [get]
func (u *UserController) Me(c *gin.Context) {
	user, err := u.userService.FindOne(c.Request.Context(), currentAccountID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "Profile fetched successfully")
}

// UpdateMe godoc
// @Summary Update the current user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/users/me [put]
func (u *UserController) UpdateMe(c *gin.Context) {
	u.update(c, currentAccountID(c))
}

// UpdateMyPassword godoc
// @Summary Change the current user password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePasswordRequest true "Old and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/users/me/password [put]
func (u *UserController) UpdateMyPassword(c *gin.Context) {
	var req request_models.UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = currentAccountID(c)

	if _, err := u.userService.UpdatePassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}

// ListUsers godoc
// @Summary List users
// @Tags User management
// @Produce json
// @Param page query int false "Page, from 1"
// @Param size query int false "Page size, -1 for all"
// @Param sort query string false "ASC or DESC"
// @Success 200 {object} utils.APIResponse{data=response_models.PageResponse[response_models.UserResponse]}
// @Security BearerAuth
// @Router /v1/managements/users [get]
func (u *UserController) ListUsers(c *gin.Context) {
	p, ok := bindPage(c, u.paging)
	if !ok {
		return
	}

	users, total, err := u.userService.FindAll(c.Request.Context(), p)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPage(users, total, userResponse), "Users fetched successfully")
}

// GetUser godoc
// @Summary Get a user
// @Tags User management
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/users/{id} [get]
func (u *UserController) GetUser(c *gin.Context) {
	user, err := u.userService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "User fetched successfully")
}

// CreateUser godoc
// @Summary Create a user
// @Description Without role_id the configured default user role is used.
// @Tags User management
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "User"
// @Success 201 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/users [post]
func (u *UserController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := u.userService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewUserResponse(user), "User created successfully")
}

// UpdateUser godoc
// @Summary Update a user
// @Tags User management
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/users/{id} [put]
func (u *UserController) UpdateUser(c *gin.Context) {
	u.update(c, c.Param("id"))
}

func (u *UserController) update(c *gin.Context, id string) {
	var req request_models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = id

	user, err := u.userService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "User updated successfully")
}

// UpdateUserRole godoc
// @Summary Move a user to another role
// @Tags User management
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body request_models.UpdateRoleRequest true "Target role"
// @Success 200 {object} utils.APIResponse{data=response_models.UserResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/managements/users/{id}/role [put]
func (u *UserController) UpdateUserRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")

	user, err := u.userService.UpdateRole(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewUserResponse(user), "User role updated successfully")
}
