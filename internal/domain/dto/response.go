package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/localization-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// GetTranslationKeysResponse is the paged result of the translation-key list
// endpoint. Total counts the filtered set, not the raw project total.
//
// @Description Paged translation keys with post-filter total
type GetTranslationKeysResponse struct {
	Keys  []model.TranslationKey `json:"keys"`
	Total int                    `json:"total" example:"42"`
	Page  int                    `json:"page" example:"1"`
	Limit int                    `json:"limit" example:"50"`
} // @name GetTranslationKeysResponse

// BulkUpdateResponse reports partial success of a bulk translation update.
//
// @Description Bulk update outcome; failures are counted, not raised
type BulkUpdateResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	UpdatedCount   int    `json:"updated_count" example:"2"`
	TotalRequested int    `json:"total_requested" example:"3"`
} // @name BulkUpdateResponse

// LanguageCompletion holds per-language completion counts for analytics.
type LanguageCompletion struct {
	Completed  int64   `json:"completed"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsResponse reports translation completion per language for a project.
//
// @Description Translation completion analytics for a project
type AnalyticsResponse struct {
	ProjectID            string                        `json:"project_id"`
	TotalKeys            int64                         `json:"total_keys"`
	CompletionByLanguage map[string]LanguageCompletion `json:"completion_by_language"`
	LastUpdated          time.Time                     `json:"last_updated"`
} // @name AnalyticsResponse

// LocalizationsResponse is the legacy flat key-to-value map for one locale.
type LocalizationsResponse struct {
	ProjectID     string            `json:"project_id"`
	Locale        string            `json:"locale"`
	Localizations map[string]string `json:"localizations"`
} // @name LocalizationsResponse

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"limit: must be between 1 and 100"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
