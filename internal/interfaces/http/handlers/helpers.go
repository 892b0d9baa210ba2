// Package handlers exposes the HTTP API over the application use cases.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atomichabits/internal/interfaces/http/middleware"
	"atomichabits/internal/shared/utils"
)

// parseIDParam parses the :id path segment. On failure it writes a 400
// response and reports false.
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// actorID returns the authenticated user's ID. On failure it writes a 401
// response and reports false. It only fails if a route was registered
// without the auth middleware.
func actorID(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	return id, true
}
