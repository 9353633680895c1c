package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/bill-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// loggable is implemented by typed domain errors that carry structured context
type loggable interface {
	LogFields() map[string]any
}

// respondError maps a domain error to its status and stable code.
// Server-side failures are logged in full and answered with a generic message.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := domainerr.HTTPStatus(err)
	traceID := coreport.TraceID(c.Request.Context())

	fields := map[string]any{
		"error":      err.Error(),
		"status":     status,
		"request_id": traceID,
	}
	var l loggable
	if errors.As(err, &l) {
		for k, v := range l.LogFields() {
			fields[k] = v
		}
	}

	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
		TraceID: traceID,
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
		resp.Message = "Internal server error"
		if status == http.StatusServiceUnavailable {
			resp.Message = "Service temporarily unavailable"
		}
	} else {
		logger.Warn(message, fields)
	}

	var verr *domainerr.ValidationError
	if errors.As(err, &verr) {
		resp.Issues = verr.Issues
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}
