package logs_core

// ConfigurationError reports a bad writer configuration detected before
// any network call. It is never produced by the datastore itself.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	ErrorAPIKeyRequired    = "API_KEY_REQUIRED"
	ErrorAPIKeyInvalid     = "API_KEY_INVALID"
	ErrorRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorInvalidCategory   = "INVALID_CATEGORY"
	ErrorMessageEmpty      = "MESSAGE_EMPTY"
)
