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

package service

import (
	"context"
	"net/http"

	"github.com/logdeck/logdeck-cli/api"
	"github.com/logdeck/logdeck-cli/filter"
	"github.com/logdeck/logdeck-cli/querycache"
	"github.com/logdeck/logdeck-cli/transport"
)

// ExportFilename is the suggested name for downloaded CSV exports.
const ExportFilename = "logs_export.csv"

// Export is a CSV export packaged for download.
type Export struct {
	Content  string
	Filename string
}

// Aggregation returns severity/source/date totals for the filter scope.
func (s *LogService) Aggregation(ctx context.Context, filters filter.Set, opts ...querycache.FetchOption) (*api.AggregationResponse, error) {
	params, key := filters.CanonicalizeAggregation()

	data, err := s.cached(ctx, key, func(ctx context.Context) (interface{}, error) {
		result := &api.AggregationResponse{}
		_, err := s.transport.Request(ctx, http.MethodGet, aggregationPath, transport.Options{
			Params: params,
			Result: result,
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return data.(*api.AggregationResponse), nil
}

// ChartData returns the time-bucketed series for trend charts.
func (s *LogService) ChartData(ctx context.Context, filters filter.Set, groupBy string, opts ...querycache.FetchOption) (*api.ChartDataResponse, error) {
	params, key := filters.CanonicalizeChart(groupBy)

	data, err := s.cached(ctx, key, func(ctx context.Context) (interface{}, error) {
		result := &api.ChartDataResponse{}
		_, err := s.transport.Request(ctx, http.MethodGet, chartDataPath, transport.Options{
			Params: params,
			Result: result,
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return data.(*api.ChartDataResponse), nil
}

// Metadata returns the service metadata used for dropdowns and filter
// bounds. It is served from cache within its freshness window.
func (s *LogService) Metadata(ctx context.Context) (*api.MetadataResponse, error) {
	data, err := s.cached(ctx, filter.MetadataKey(), func(ctx context.Context) (interface{}, error) {
		result := &api.MetadataResponse{}
		_, err := s.transport.Request(ctx, http.MethodGet, metadataPath, transport.Options{
			Result: result,
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}

	return data.(*api.MetadataResponse), nil
}

// ExportCSV downloads the filtered logs as CSV text. Exports are never
// cached.
func (s *LogService) ExportCSV(ctx context.Context, filters filter.Set) (*Export, error) {
	result, err := s.transport.Request(ctx, http.MethodGet, exportCSVPath, transport.Options{
		Params: filters.ExportParams(),
	})
	if err != nil {
		return nil, err
	}

	return &Export{Content: result.Text, Filename: ExportFilename}, nil
}
