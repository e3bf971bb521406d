package handlers

import (
	"net/http"

	apperrors "smart-erd-backend/internal/errors"
	"smart-erd-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondServiceError maps service-layer errors onto HTTP status codes.
// Unclassified errors are logged and surfaced as a plain 500 so internal
// details never leak to clients.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsBusinessRule(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithField("path", c.FullPath()).Errorf("unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseUUIDParam parses a path parameter as a UUID, answering 400 itself on
// failure. The bool reports whether the caller should continue.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
