package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"privstore/internal/shared/errors"
)

func parseRequestID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	if idStr == "" {
		return 0, errors.NewValidationError("request ID is required")
	}

	id, err := strconv.ParseUint(idStr, 10, strconv.IntSize)
	if err != nil {
		return 0, errors.NewValidationError("invalid request ID format")
	}

	if id == 0 {
		return 0, errors.NewValidationError("request ID cannot be zero")
	}

	return uint(id), nil
}

func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.NewValidationError("limit must be a non-negative integer")
	}
	return limit, nil
}
