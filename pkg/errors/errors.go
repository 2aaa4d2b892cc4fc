package errors

import "fmt"

// Error codes
const (
	CodeAppError   = "APP_ERROR"
	CodeFetch      = "FETCH_ERROR"
	CodeProvider   = "PROVIDER_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeConfig     = "CONFIG_ERROR"
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(message, code string, statusCode int, context map[string]any) *AppError {
	return &AppError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// FetchError describes a page that could not be retrieved.
type FetchError struct {
	*AppError
	URL    string
	Status int
}

func NewFetchError(message, url string, status int, cause error) *FetchError {
	return &FetchError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeFetch,
			StatusCode: 502,
			Context: map[string]any{
				"url":    url,
				"status": status,
			},
			Cause: cause,
		},
		URL:    url,
		Status: status,
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
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

// ProviderError wraps a failed call to a language-model vendor.
type ProviderError struct {
	*AppError
	Provider  string
	Operation string
}

func NewProviderError(message, provider, operation string, cause error) *ProviderError {
	return &ProviderError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeProvider,
			StatusCode: 502,
			Context: map[string]any{
				"provider":  provider,
				"operation": operation,
			},
			Cause: cause,
		},
		Provider:  provider,
		Operation: operation,
	}
}

type ConfigError struct {
	*AppError
	Field string
}

func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeConfig,
			StatusCode: 500,
			Context: map[string]any{
				"field": field,
			},
		},
		Field: field,
	}
}
