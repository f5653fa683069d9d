package controllers

import (
	"strconv"

	"gestion-hotel/utils"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, utils.BadRequest("identifiant '%s' invalide", raw)
	}
	return uint(id), nil
}

// paginationParams reads the page/size/sortBy query parameters with the same
// defaults for every list endpoint.
func paginationParams(c *gin.Context, defaultSort string) (int, int, string) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		size = 10
	}
	sortBy := c.DefaultQuery("sortBy", defaultSort)
	return page, size, sortBy
}

// optionalEmployeID reads the optional employeId query parameter. An empty
// parameter means no actor; a malformed one is a 400.
func optionalEmployeID(c *gin.Context) (*uint, error) {
	raw := c.Query("employeId")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, utils.BadRequest("employeId '%s' invalide", raw)
	}
	u := uint(id)
	return &u, nil
}
