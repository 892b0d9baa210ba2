package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"atomichabits/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParseFixedPagination parses the page number from the query string while
// keeping the page size fixed. The client cannot change the page size.
func ParseFixedPagination(c *gin.Context, pageSize int) Pagination {
	return Pagination{
		Page:     parseQueryInt(c, "page", constants.DefaultPage),
		PageSize: pageSize,
	}
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
