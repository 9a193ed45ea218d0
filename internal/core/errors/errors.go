package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidBrewIDError = "invalid_brew_id"
	HttpInvalidQueryError  = "invalid_query"
	HttpBrewNotFoundError  = "brew_not_found"
	HttpRateLimitedError   = "rate_limited"
	HttpUnavailableError   = "service_unavailable"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
