package errors

import "fmt"

// Error codes
const (
	CodeAlertError           = "ALERT_ERROR"
	CodeAPIError             = "API_ERROR"
	CodeValidation           = "VALIDATION_ERROR"
	CodeCache                = "CACHE_ERROR"
	CodeProvider             = "PROVIDER_ERROR"
	CodeMalformedTranslation = "MALFORMED_TRANSLATION"
)

type AlertError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AlertError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AlertError) Unwrap() error {
	return e.Cause
}

func NewAlertError(message, code string, statusCode int, context map[string]any) *AlertError {
	return &AlertError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AlertError) WithCause(cause error) *AlertError {
	e.Cause = cause
	return e
}

type APIError struct {
	*AlertError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		AlertError: &AlertError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*AlertError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AlertError: &AlertError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*AlertError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AlertError: &AlertError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

// ProviderError covers unreachable, unauthorized, rate-limited, or timed-out
// AI backends. The translator recovers from it by returning the source text.
type ProviderError struct {
	*AlertError
	Provider string
}

func NewProviderError(message, provider string, cause error) *ProviderError {
	return &ProviderError{
		AlertError: &AlertError{
			Message:    message,
			Code:       CodeProvider,
			StatusCode: 502,
			Context: map[string]any{
				"provider": provider,
			},
			Cause: cause,
		},
		Provider: provider,
	}
}

// MalformedTranslationError means the AI responded but no JSON object could
// be recovered by any extraction stage. Raw keeps the payload for diagnosis;
// it is logged, never shown to end users.
type MalformedTranslationError struct {
	*AlertError
	Raw string
}

func NewMalformedTranslationError(message, raw string, cause error) *MalformedTranslationError {
	return &MalformedTranslationError{
		AlertError: &AlertError{
			Message:    message,
			Code:       CodeMalformedTranslation,
			StatusCode: 502,
			Context: map[string]any{
				"raw_length": len(raw),
			},
			Cause: cause,
		},
		Raw: raw,
	}
}
