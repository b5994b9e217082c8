package request_models

import (
	"strings"

	"eventmanager/pkg/utils"
)

// AllItems as a page size disables offset and limit.
const AllItems = -1

const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

type PaginationRequest struct {
	Page int    `form:"page" binding:"omitempty,min=1"`
	Size int    `form:"size" binding:"omitempty,min=-1"`
	Sort string `form:"sort" binding:"omitempty,sortdir"`
}

// WithDefaults fills the zero fields: first page, defaultSize items, newest first.
func (p PaginationRequest) WithDefaults(defaultSize int) PaginationRequest {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Size == 0 {
		p.Size = defaultSize
	}
	if p.Sort == "" {
		p.Sort = SortDesc
	}
	p.Sort = strings.ToUpper(p.Sort)
	return p
}

func (p PaginationRequest) Validate() error {
	if p.Page < 1 {
		return utils.ErrInvalidPage
	}
	if p.Size == 0 || p.Size < AllItems {
		return utils.ErrInvalidPageSize
	}
	if s := strings.ToUpper(p.Sort); s != SortAsc && s != SortDesc {
		return utils.ErrInvalidSort
	}
	return nil
}

func (p PaginationRequest) Descending() bool {
	return strings.ToUpper(p.Sort) != SortAsc
}

func (p PaginationRequest) Unbounded() bool {
	return p.Size == AllItems
}

func (p PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Size
}
