package controllers

import (
	"github.com/gin-gonic/gin"

	"eventmanager/internal/models/request_models"
	"eventmanager/pkg/middleware"
	"eventmanager/pkg/utils"
)

// Paging carries the page size used when a list request sets none.
type Paging struct {
	ItemsPerPage int
}

// bindPage reads page, size and sort from the query string. It answers the
// request itself and returns false when they do not validate.
func bindPage(c *gin.Context, paging Paging) (request_models.PaginationRequest, bool) {
	var p request_models.PaginationRequest
	if err := c.ShouldBindQuery(&p); err != nil {
		utils.RespondValidationError(c, err)
		return p, false
	}
	return p.WithDefaults(paging.ItemsPerPage), true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondValidationError(c, err)
		return false
	}
	return true
}

func currentAccountID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
