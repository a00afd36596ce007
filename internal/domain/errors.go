package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrValidation   ErrorCode = "VALIDATION_ERROR"

	// Survey specific errors
	ErrSurveyNotFound   ErrorCode = "SURVEY_NOT_FOUND"
	ErrQuestionNotFound ErrorCode = "QUESTION_NOT_FOUND"
	ErrEntryNotFound    ErrorCode = "ENTRY_NOT_FOUND"
	ErrInvalidQuestion  ErrorCode = "INVALID_QUESTION_TYPE"

	// User specific errors
	ErrUserNotFound        ErrorCode = "USER_NOT_FOUND"
	ErrPrimaryAdminRemoval ErrorCode = "PRIMARY_ADMIN_PROTECTED"

	// Generation errors
	ErrGenerationFailed ErrorCode = "GENERATION_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewSurveyNotFoundError(surveyID string) *DomainError {
	return NewError(ErrSurveyNotFound, fmt.Sprintf("Survey not found with ID: %s", surveyID), nil)
}

func NewQuestionNotFoundError(questionID string) *DomainError {
	return NewError(ErrQuestionNotFound, fmt.Sprintf("Question not found with ID: %s", questionID), nil)
}

func NewEntryNotFoundError(entryID string) *DomainError {
	return NewError(ErrEntryNotFound, fmt.Sprintf("Entry not found with ID: %s", entryID), nil)
}

func NewInvalidQuestionTypeError(questionType string) *DomainError {
	return NewError(ErrInvalidQuestion, fmt.Sprintf("Invalid question type: %s", questionType), nil)
}

func NewUserNotFoundError(userID string) *DomainError {
	return NewError(ErrUserNotFound, fmt.Sprintf("User not found with ID: %s", userID), nil)
}

// NewPrimaryAdminError is returned when a delete would remove the primary
// admin user or the last remaining user.
func NewPrimaryAdminError() *DomainError {
	return NewError(ErrPrimaryAdminRemoval, "Cannot delete the primary admin user", nil)
}

func NewGenerationError(err error) *DomainError {
	return NewError(ErrGenerationFailed, "Failed to generate survey", err)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field-level validation failures for one request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", e[0].Error())
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max)}
}
