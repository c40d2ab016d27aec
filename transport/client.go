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

// Package transport issues logical requests against the dashboard service.
// It owns the HTTP concerns: query-string assembly with empty-value elision,
// JSON versus text/CSV response handling, the per-call timeout, and the
// normalization of every failure mode into an *apierror.APIError.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/logdeck/logdeck-cli/apierror"
	"github.com/logdeck/logdeck-cli/helper"
)

// logsListingPath is the one path whose code-less 422 responses are not
// logged, see isSuppressedValidationNoise.
const logsListingPath = "/logs"

// Config fully describes a client. Variants of the client differ only by
// configuration, never by type.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the single HTTP client of the data-access layer.
type Client struct {
	rest   *resty.Client
	logger *zap.SugaredLogger
}

// New creates a client for the given service. A nil logger falls back to
// the package logger.
func New(cfg Config, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = helper.GetSugarLogger([]string{"transport"})
	}

	rest := resty.New()
	rest.SetHostURL(cfg.BaseURL)
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}

	return &Client{rest: rest, logger: logger}
}

// HTTPClient exposes the underlying http.Client, used by tests to attach
// httpmock responders.
func (c *Client) HTTPClient() *http.Client {
	return c.rest.GetClient()
}

// Options carries the per-request inputs. Params entries with an empty
// value are omitted from the query string entirely, a `key=` pair is never
// emitted. Body is serialized only for non-GET methods. Result, when set,
// receives the decoded JSON of a successful response.
type Options struct {
	Params  map[string]string
	Body    interface{}
	Headers map[string]string
	Result  interface{}
}

// Result describes a successful response. Text is populated for text/CSV
// bodies, which are handed back raw for the caller to package.
type Result struct {
	Status      int
	ContentType string
	Raw         []byte
	Text        string
}

// Request performs one logical call. Non-2xx responses, transport failures,
// timeouts and malformed success bodies all surface as *apierror.APIError,
// never as data.
func (c *Client) Request(ctx context.Context, method, path string, opts Options) (*Result, error) {
	req := c.rest.R()
	if ctx != nil {
		req.SetContext(ctx)
	}

	for key, value := range opts.Params {
		if value == "" {
			continue
		}
		req.SetQueryParam(key, value)
	}
	for key, value := range opts.Headers {
		req.SetHeader(key, value)
	}
	if method != http.MethodGet && opts.Body != nil {
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		// Connection failures and aborted timeouts never reached the
		// service: network class, status 0.
		apiErr := apierror.NewNetworkError(err)
		c.logFailure(method, path, apiErr)
		return nil, apiErr
	}

	if !resp.IsSuccess() {
		apiErr := apierror.Decode(resp.StatusCode(), resp.Body())
		c.logFailure(method, path, apiErr)
		return nil, apiErr
	}

	result := &Result{
		Status:      resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Raw:         resp.Body(),
	}

	if isTextual(result.ContentType) {
		result.Text = string(resp.Body())
		return result, nil
	}

	if opts.Result != nil {
		if err := json.Unmarshal(resp.Body(), opts.Result); err != nil {
			// A 2xx body that fails to parse is not swallowed.
			apiErr := apierror.NewNetworkError(err)
			c.logFailure(method, path, apiErr)
			return nil, apiErr
		}
	}

	return result, nil
}

func isTextual(contentType string) bool {
	return strings.HasPrefix(contentType, "text/")
}

// isSuppressedValidationNoise matches the one documented logging exception:
// a 422 with no application code on the logs listing endpoint is an
// expected, non-actionable validation no-op and is deliberately kept out of
// the logs. The scope is exactly this path and nothing wider.
func isSuppressedValidationNoise(method, path string, apiErr *apierror.APIError) bool {
	return method == http.MethodGet &&
		path == logsListingPath &&
		apiErr.Status == http.StatusUnprocessableEntity &&
		apiErr.Code == apierror.CodeUnknown
}

func (c *Client) logFailure(method, path string, apiErr *apierror.APIError) {
	if isSuppressedValidationNoise(method, path, apiErr) {
		return
	}

	c.logger.Warnw("request failed",
		"method", method,
		"path", path,
		"status", apiErr.Status,
		"code", apiErr.Code,
		"request_id", apiErr.RequestID,
		"error", apiErr.Message,
	)
}
