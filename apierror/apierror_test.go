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

package apierror

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificationPredicates(t *testing.T) {
	var tests = []struct {
		name         string
		err          *APIError
		isValidation bool
		isNotFound   bool
		isServer     bool
		isNetwork    bool
	}{
		{
			name: "validation by code",
			err:  &APIError{Status: 422, Code: CodeValidation},

			isValidation: true,
		},
		{
			name: "validation by field errors only",
			err: &APIError{Status: 400, ValidationErrors: []FieldError{
				{Field: "message", Value: "", Reason: "Required"},
			}},

			isValidation: true,
		},
		{
			name: "not found by status",
			err:  &APIError{Status: 404},

			isNotFound: true,
		},
		{
			name: "not found by code",
			err:  &APIError{Status: 410, Code: CodeLogNotFound},

			isNotFound: true,
		},
		{
			name: "server error",
			err:  &APIError{Status: 503, Code: CodeDatabaseConnection},

			isServer: true,
		},
		{
			name: "network failure",
			err:  &APIError{Status: 0},

			isNetwork: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValidation, tt.err.IsValidationError())
			assert.Equal(t, tt.isNotFound, tt.err.IsNotFoundError())
			assert.Equal(t, tt.isServer, tt.err.IsServerError())
			assert.Equal(t, tt.isNetwork, tt.err.IsNetworkError())
		})
	}
}

func TestValidationErrorFullShape(t *testing.T) {
	err := &APIError{
		Status:  422,
		Code:    CodeValidation,
		Message: "Invalid request data provided",
		ValidationErrors: []FieldError{
			{Field: "message", Value: "", Reason: "Required"},
		},
	}

	assert.True(t, err.IsValidationError())
	assert.False(t, err.IsServerError())
	assert.Equal(t, "Invalid request data provided. Validation errors: message: Required", err.DetailedMessage())
}

func TestDetailedMessage(t *testing.T) {
	var tests = []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "no field errors returns base message",
			err:      &APIError{Message: "Log entry not found"},
			expected: "Log entry not found",
		},
		{
			name: "field errors are semicolon joined",
			err: &APIError{
				Message: "Invalid request data provided",
				ValidationErrors: []FieldError{
					{Field: "severity", Value: "TRACE", Reason: "unknown level"},
					{Field: "message", Value: "", Reason: "Required"},
				},
			},
			expected: "Invalid request data provided. Validation errors: severity: unknown level; message: Required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.DetailedMessage())
		})
	}
}

func TestNetworkErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewNetworkError(cause)

	assert.Equal(t, 0, err.Status)
	assert.True(t, err.IsNetworkError())
	assert.Equal(t, cause, err.Unwrap())
}
