package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code      int    `json:"code"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Action    string `json:"action"`
}

// Actions a client can take after an error
const (
	ActionFixRequest   = "fix_request"
	ActionTopUp        = "top_up"
	ActionRetry        = "retry"
	ActionAuthenticate = "authenticate"
)
