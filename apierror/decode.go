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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// envelope is the standardized error body of the dashboard service:
// { "error": {"message", "code", "details"}, "success": false, "request_id"? }
type envelope struct {
	Error     *envelopeBody `json:"error"`
	Success   *bool         `json:"success"`
	RequestID string        `json:"request_id"`
}

type envelopeBody struct {
	Message string                 `json:"message"`
	Code    int                    `json:"code"`
	Details map[string]interface{} `json:"details"`
}

// legacyBody covers older error shapes that predate the envelope.
type legacyBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Decode converts a non-2xx response body into an *APIError. It first tries
// the standardized envelope, then degrades to the legacy shapes (`detail`,
// `message`, raw body) and finally to "HTTP <status>: <statusText>".
func Decode(status int, body []byte) *APIError {
	if apiErr, ok := decodeEnvelope(status, body); ok {
		return apiErr
	}

	return &APIError{
		Status:  status,
		Code:    CodeUnknown,
		Message: legacyMessage(status, body),
	}
}

func decodeEnvelope(status int, body []byte) (*APIError, bool) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false
	}
	if env.Error == nil || env.Error.Message == "" {
		return nil, false
	}

	return &APIError{
		Status:           status,
		Code:             env.Error.Code,
		Message:          env.Error.Message,
		Details:          env.Error.Details,
		ValidationErrors: fieldErrors(env.Error.Details),
		RequestID:        env.RequestID,
	}, true
}

// fieldErrors lifts field-level failures out of the details map. The service
// reports either a `validation_errors` list or a single flat
// {field, value, reason} triple.
func fieldErrors(details map[string]interface{}) []FieldError {
	if details == nil {
		return nil
	}

	if raw, ok := details["validation_errors"]; ok {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil
		}
		var fieldErrs []FieldError
		if err := json.Unmarshal(encoded, &fieldErrs); err != nil {
			return nil
		}
		return fieldErrs
	}

	field, hasField := details["field"].(string)
	reason, hasReason := details["reason"].(string)
	if !hasField || !hasReason {
		return nil
	}
	value, _ := details["value"].(string)
	return []FieldError{{Field: field, Value: value, Reason: reason}}
}

func legacyMessage(status int, body []byte) string {
	var legacy legacyBody
	if err := json.Unmarshal(body, &legacy); err == nil {
		if legacy.Detail != "" {
			return legacy.Detail
		}
		if legacy.Message != "" {
			return legacy.Message
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}
