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

package cmd

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logdeck/logdeck-cli/apierror"
	"github.com/logdeck/logdeck-cli/filter"
	"github.com/logdeck/logdeck-cli/querycache"
	"github.com/logdeck/logdeck-cli/service"
	"github.com/logdeck/logdeck-cli/transport"
)

const testBaseURL = "http://dashboard.test/api/v1"

func newTestLogService(t *testing.T) *service.LogService {
	client := transport.New(transport.Config{BaseURL: testBaseURL, Timeout: time.Second}, nil)

	httpmock.ActivateNonDefault(client.HTTPClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return service.NewLogService(client, querycache.NewStore(nil), nil)
}

// newListShapedCommand builds a fresh command carrying the logs flag set, so
// flag state never leaks between tests.
func newListShapedCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "logs"}
	addFilterFlags(cmd)
	cmd.Flags().String("search", "", "")
	cmd.Flags().String("sort-by", "", "")
	cmd.Flags().String("sort-order", "", "")
	cmd.Flags().Int("page", 0, "")
	cmd.Flags().Int("page-size", 0, "")
	return cmd
}

func TestLogsCommandWithStatusCode(t *testing.T) {
	var tests = []struct {
		statusCode int
		body       string
		total      int
		hasErr     bool
	}{
		{200, `{"logs": [{"id": 1, "timestamp": "2024-05-01T12:00:00Z", "severity": "ERROR",
			"source": "payments", "message": "boom", "created_at": "2024-05-01T12:00:01Z",
			"updated_at": "2024-05-01T12:00:01Z"}], "total": 1, "page": 1, "page_size": 50,
			"total_pages": 1}`, 1, false},
		{422, `{"detail": "page out of range"}`, 0, true},
		{500, `{"detail": "boom"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.statusCode), func(t *testing.T) {
			svc := newTestLogService(t)

			httpmock.RegisterResponder("GET", testBaseURL+"/logs",
				func(req *http.Request) (*http.Response, error) {
					return httpmock.NewStringResponse(tt.statusCode, tt.body), nil
				},
			)

			result, err := runLogsCmd(svc, filter.Set{})

			assert.Equal(t, 1, httpmock.GetTotalCallCount())
			if tt.hasErr {
				assert.NotNil(t, err)
				assert.Nil(t, result)
			} else {
				assert.Nil(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tt.total, result.Total)
			}
		})
	}
}

func TestFiltersFromFlags(t *testing.T) {
	cmd := newListShapedCommand()

	require.NoError(t, cmd.Flags().Set("search", "timeout"))
	require.NoError(t, cmd.Flags().Set("severity", "ERROR"))
	require.NoError(t, cmd.Flags().Set("from", "2024-05-01T00:00:00Z"))
	require.NoError(t, cmd.Flags().Set("to", "2024-05-02T00:00:00Z"))
	require.NoError(t, cmd.Flags().Set("page", "3"))

	filters, err := filtersFromFlags(cmd)

	require.NoError(t, err)
	assert.Equal(t, "timeout", filters.Search)
	assert.Equal(t, "ERROR", filters.Severity)
	assert.Equal(t, 3, filters.Page)
	require.NotNil(t, filters.StartDate)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), filters.StartDate.UTC())
	require.NotNil(t, filters.EndDate)
}

func TestFiltersFromFlagsRejectsBadDate(t *testing.T) {
	cmd := newListShapedCommand()
	require.NoError(t, cmd.Flags().Set("from", "yesterday"))

	_, err := filtersFromFlags(cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RFC3339")
}

func TestFiltersFromFlagsLeavesUnsetDatesNil(t *testing.T) {
	filters, err := filtersFromFlags(newListShapedCommand())

	require.NoError(t, err)
	assert.Nil(t, filters.StartDate)
	assert.Nil(t, filters.EndDate)
}

func TestDescribeError(t *testing.T) {
	var tests = []struct {
		name     string
		err      error
		expected string
	}{
		{
			name: "validation",
			err: &apierror.APIError{Status: 422, Code: apierror.CodeValidation,
				Message: "Invalid request data provided",
				ValidationErrors: []apierror.FieldError{
					{Field: "message", Reason: "Required"},
				}},
			expected: "invalid input: Invalid request data provided. Validation errors: message: Required",
		},
		{
			name:     "not found",
			err:      &apierror.APIError{Status: 404, Message: "Log entry not found"},
			expected: "not found: Log entry not found",
		},
		{
			name:     "server",
			err:      &apierror.APIError{Status: 503, Message: "upstream exploded"},
			expected: "the service had a problem, try again later: upstream exploded",
		},
		{
			name:     "network",
			err:      &apierror.APIError{Status: 0, Message: "connection refused"},
			expected: "could not reach the service: connection refused",
		},
		{
			name:     "plain error passes through",
			err:      fmt.Errorf("nothing set, use at least one of --severity, --source, --message"),
			expected: "nothing set, use at least one of --severity, --source, --message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describeError(tt.err))
		})
	}
}
