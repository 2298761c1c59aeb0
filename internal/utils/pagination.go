package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SortParams is the list ordering requested through the sort and order
// query parameters.
type SortParams struct {
	Sort  string `json:"sort" form:"sort"`
	Order string `json:"order" form:"order"`
}

// GetSortParams reads sort and order from the query. A sort field outside
// allowed falls back to DefaultSortField and an unknown order to ascending.
func GetSortParams(c *gin.Context, allowed []string) *SortParams {
	sort := c.DefaultQuery("sort", DefaultSortField)
	order := strings.ToLower(c.DefaultQuery("order", DefaultSortOrder))

	// Validate sort field
	valid := false
	for _, field := range allowed {
		if field == sort {
			valid = true
			break
		}
	}
	if !valid {
		sort = DefaultSortField
	}

	// Validate order
	if order != "asc" && order != "desc" {
		order = DefaultSortOrder
	}

	return &SortParams{
		Sort:  sort,
		Order: order,
	}
}

func (p *SortParams) IsDescending() bool {
	return p.Order == "desc"
}
