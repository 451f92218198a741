// Package errors provides standardized error handling for the chatbot pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
	ErrCodeUnknownField        ErrorCode = "UNKNOWN_FIELD"
	ErrCodeNonEnglishInput     ErrorCode = "NON_ENGLISH_INPUT"
	ErrCodePersistenceFailed   ErrorCode = "PERSISTENCE_FAILED"

	ErrCodeWeatherAPITimeout  ErrorCode = "WEATHER_API_TIMEOUT"
	ErrCodeCountryAPITimeout  ErrorCode = "COUNTRY_API_TIMEOUT"
	ErrCodeWikiAPITimeout     ErrorCode = "WIKI_API_TIMEOUT"
	ErrCodeCityNotFound       ErrorCode = "CITY_NOT_FOUND"
	ErrCodeDatabaseInsertFail ErrorCode = "DATABASE_INSERT_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewProviderUnavailableError marks an aggregation result with no parsable
// fields. Resolved as an empty record, never surfaced to the user as-is.
func NewProviderUnavailableError(city string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProviderUnavailable,
		Message:   "Aggregation provider returned no parsable data",
		Details:   fmt.Sprintf("city: %s", city),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownFieldError creates a non-retryable missing-field error.
func NewUnknownFieldError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownField,
		Message:   "Requested field not present in record",
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNonEnglishInputError creates a non-retryable language error.
func NewNonEnglishInputError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNonEnglishInput,
		Message:   "Input text is not English",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPersistenceFailedError creates a retryable persistence error. Logged
// and swallowed; never affects the reply.
func NewPersistenceFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePersistenceFailed,
		Message:   "Failed to persist destination record",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFail,
		Message:   "Database insert error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
