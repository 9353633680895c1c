package dto

import errs "github.com/amirhossein-jamali/bill-processor/internal/domain/error"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Issues  []errs.FieldIssue `json:"issues,omitempty"`
	TraceID string            `json:"traceId,omitempty"`
}
