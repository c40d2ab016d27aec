// Copyright 2024 Logdeck Technologies <dev@logdeck.io>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package apierror is the single error taxonomy of the data-access layer.
// Every failed call against the dashboard service surfaces as an *APIError,
// and all downstream policy (retry eligibility, message selection, field
// feedback) goes through the classification predicates defined here rather
// than re-deriving it from raw status or code values.
package apierror

import (
	"fmt"
	"strings"
)

// Application error codes assigned by the dashboard service.
const (
	CodeUnknown        = 0
	CodeInternal       = 1000
	CodeValidation     = 1001
	CodeAuthentication = 1002
	CodeAuthorization  = 1003

	CodeLogNotFound    = 2001
	CodeLogCreateError = 2002
	CodeLogUpdateError = 2003
	CodeLogDeleteError = 2004
	CodeLogQueryError  = 2005

	CodeDatabaseConnection = 3001
	CodeDatabaseConstraint = 3002
	CodeDatabaseTimeout    = 3003
)

// FieldError is one field-level validation failure reported by the service.
type FieldError struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// APIError is the typed error produced once per failed transport call.
// Status is the HTTP status, 0 for a pure network or timeout failure.
// Code is the service's application-level classification, 0 if unknown.
// It is immutable after construction.
type APIError struct {
	Status           int
	Code             int
	Message          string
	Details          map[string]interface{}
	ValidationErrors []FieldError
	RequestID        string

	cause error
}

func (e *APIError) Error() string {
	if e.Code != CodeUnknown {
		return fmt.Sprintf("api error [%d/%d]: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error [%d]: %s", e.Status, e.Message)
}

// Unwrap exposes the underlying transport error for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.cause
}

// IsValidationError reports whether the user must correct their input.
// Validation failures are never auto-retried.
func (e *APIError) IsValidationError() bool {
	return e.Code == CodeValidation || len(e.ValidationErrors) > 0
}

// IsNotFoundError reports whether the addressed resource is missing.
func (e *APIError) IsNotFoundError() bool {
	return e.Status == 404 || e.Code == CodeLogNotFound
}

// IsServerError reports a 5xx failure, eligible for retry.
func (e *APIError) IsServerError() bool {
	return e.Status >= 500
}

// IsNetworkError reports a transport or timeout failure that never reached
// the service, eligible for retry.
func (e *APIError) IsNetworkError() bool {
	return e.Status == 0
}

// DetailedMessage returns the base message, extended with the semicolon
// joined field-level failures when any are present.
func (e *APIError) DetailedMessage() string {
	if len(e.ValidationErrors) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.ValidationErrors))
	for _, fieldErr := range e.ValidationErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", fieldErr.Field, fieldErr.Reason))
	}
	return fmt.Sprintf("%s. Validation errors: %s", e.Message, strings.Join(parts, "; "))
}

// NewNetworkError wraps a transport-level failure (connection refused,
// timeout, malformed success body) that produced no usable response.
func NewNetworkError(err error) *APIError {
	return &APIError{
		Status:  0,
		Code:    CodeUnknown,
		Message: err.Error(),
		cause:   err,
	}
}
