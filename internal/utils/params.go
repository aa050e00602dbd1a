package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/constants"
)

// ParseIDParam parses the :id path parameter
func ParseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// NormalizeCategoryFilter maps an empty filter to the "All" sentinel
func NormalizeCategoryFilter(category string) string {
	if category == "" {
		return constants.FilterAll
	}
	return category
}
