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

package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsAndExplicitAllAreIndistinguishable(t *testing.T) {
	explicit := Set{Severity: AllValues, Source: AllValues, Search: ""}
	absent := Set{}

	explicitParams, explicitKey := explicit.Canonicalize()
	absentParams, absentKey := absent.Canonicalize()

	assert.Equal(t, absentParams, explicitParams)
	assert.Equal(t, absentKey, explicitKey)
}

func TestCanonicalizeDefaultWireParams(t *testing.T) {
	filters := Set{Severity: AllValues, Source: AllValues, Page: 1, PageSize: 15, SortBy: "timestamp", SortOrder: "desc"}

	params, key := filters.Canonicalize()

	assert.Equal(t, map[string]string{
		"page":       "1",
		"page_size":  "15",
		"sort_by":    "timestamp",
		"sort_order": "desc",
	}, params)
	assert.NotContains(t, params, "severity")
	assert.NotContains(t, params, "source")
	assert.Equal(t, FamilyLogs, key.Family)
	assert.Equal(t, "page=1&page_size=15&sort_by=timestamp&sort_order=desc", key.Canon)
}

func TestCanonicalizeIncludesActiveFilters(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	filters := Set{
		Search:    "timeout",
		Severity:  "ERROR",
		Source:    "payments",
		StartDate: &start,
		EndDate:   &end,
		Page:      3,
	}

	params, key := filters.Canonicalize()

	assert.Equal(t, "timeout", params["search"])
	assert.Equal(t, "ERROR", params["severity"])
	assert.Equal(t, "payments", params["source"])
	assert.Equal(t, "2024-05-01T00:00:00Z", params["start_date"])
	assert.Equal(t, "2024-05-02T00:00:00Z", params["end_date"])
	assert.Equal(t, "3", params["page"])
	assert.Equal(t, "50", params["page_size"])
	assert.Contains(t, key.Canon, "severity=ERROR")
}

func TestPartialDateRangeIsDropped(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	oneSided := Set{StartDate: &start}
	params, key := oneSided.Canonicalize()

	assert.NotContains(t, params, "start_date")
	assert.NotContains(t, params, "end_date")

	_, noRangeKey := Set{}.Canonicalize()
	assert.Equal(t, noRangeKey, key)
}

func TestModifiersResetPage(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	base := Set{Page: 7}

	var tests = []struct {
		name    string
		changed Set
	}{
		{"search", base.WithSearch("error")},
		{"severity", base.WithSeverity("ERROR")},
		{"source", base.WithSource("payments")},
		{"date range", base.WithDateRange(&start, &end)},
		{"sort", base.WithSort("severity", "asc")},
		{"page size", base.WithPageSize(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, tt.changed.Page)

			params, _ := tt.changed.Canonicalize()
			assert.Equal(t, "1", params["page"])
		})
	}

	assert.Equal(t, 4, base.WithPage(4).Page)
}

func TestNormalizedLeavesReceiverUntouched(t *testing.T) {
	raw := Set{Search: "boom"}
	normalized := raw.Normalized()

	assert.Equal(t, AllValues, normalized.Severity)
	assert.Equal(t, 1, normalized.Page)
	assert.Equal(t, DefaultPageSize, normalized.PageSize)
	assert.Equal(t, DefaultSortBy, normalized.SortBy)
	assert.Equal(t, DefaultSortOrder, normalized.SortOrder)

	assert.Equal(t, Set{Search: "boom"}, raw)
}

func TestAggregationAndChartKeys(t *testing.T) {
	filters := Set{Severity: "ERROR"}

	aggParams, aggKey := filters.CanonicalizeAggregation()
	assert.Equal(t, map[string]string{"severity": "ERROR"}, aggParams)
	assert.Equal(t, FamilyAggregation, aggKey.Family)
	assert.NotContains(t, aggParams, "page")

	chartParams, chartKey := filters.CanonicalizeChart("")
	assert.Equal(t, DefaultGroupBy, chartParams["group_by"])
	assert.Equal(t, FamilyChartData, chartKey.Family)

	hourlyParams, hourlyKey := filters.CanonicalizeChart("hour")
	assert.Equal(t, "hour", hourlyParams["group_by"])
	assert.NotEqual(t, chartKey, hourlyKey)
}

func TestLogAndMetadataKeys(t *testing.T) {
	assert.Equal(t, Key{Family: "log:42"}, LogKey(42))
	assert.Equal(t, "log:42", LogKey(42).String())
	assert.Equal(t, Key{Family: FamilyMetadata}, MetadataKey())

	_, listKey := Set{}.Canonicalize()
	assert.Equal(t, FamilyLogs+"?"+listKey.Canon, listKey.String())
}
