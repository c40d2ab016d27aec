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

// Package filter converts raw dashboard filter state into the wire
// parameters sent to the service and the canonical cache key shared by
// equivalent filter states. The central rule: a value explicitly equal to
// its default ("all" severity, "all" source, empty search) and the same
// value being absent are indistinguishable after canonicalization.
package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/imdario/mergo"
	"github.com/jinzhu/copier"
)

const (
	// AllValues is the sentinel meaning "do not filter on this field".
	AllValues = "all"

	DefaultPageSize  = 50
	DefaultSortBy    = "timestamp"
	DefaultSortOrder = "desc"
	DefaultGroupBy   = "day"
)

// Set is one complete description of what the dashboard is looking at.
// Zero values mean "unset" and are filled from Defaults during
// canonicalization.
type Set struct {
	Search    string
	Severity  string
	Source    string
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Defaults is the filter state of a freshly opened dashboard.
func Defaults() Set {
	return Set{
		Severity:  AllValues,
		Source:    AllValues,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// Normalized returns s with every unset field filled from Defaults.
// The receiver is left untouched.
func (s Set) Normalized() Set {
	normalized := Set{}
	copier.Copy(&normalized, &s)
	mergo.Merge(&normalized, Defaults())
	return normalized
}

// Canonicalize produces the wire parameters of the logs listing endpoint
// and the cache key identifying the result. Paging and sorting fields are
// always present, filters are omitted when unset or equal to their "all"
// default, and a one-sided date range is treated as no range at all.
func (s Set) Canonicalize() (map[string]string, Key) {
	n := s.Normalized()

	builder := newParamBuilder()
	builder.add("page", strconv.Itoa(n.Page))
	builder.add("page_size", strconv.Itoa(n.PageSize))
	builder.add("sort_by", n.SortBy)
	builder.add("sort_order", n.SortOrder)
	if n.Search != "" {
		builder.add("search", n.Search)
	}
	n.addScopeParams(builder)

	return builder.params, Key{Family: FamilyLogs, Canon: builder.canon()}
}

// CanonicalizeAggregation produces the parameter subset accepted by the
// aggregation endpoint (severity, source, date range) and its cache key.
func (s Set) CanonicalizeAggregation() (map[string]string, Key) {
	builder := newParamBuilder()
	s.Normalized().addScopeParams(builder)

	return builder.params, Key{Family: FamilyAggregation, Canon: builder.canon()}
}

// CanonicalizeChart produces the chart-data parameters and cache key.
// groupBy defaults to daily buckets.
func (s Set) CanonicalizeChart(groupBy string) (map[string]string, Key) {
	if groupBy == "" {
		groupBy = DefaultGroupBy
	}

	builder := newParamBuilder()
	builder.add("group_by", groupBy)
	s.Normalized().addScopeParams(builder)

	return builder.params, Key{Family: FamilyChartData, Canon: builder.canon()}
}

// ExportParams produces the parameter subset of the CSV export endpoint.
// Exports bypass the cache, so no key is derived.
func (s Set) ExportParams() map[string]string {
	builder := newParamBuilder()
	s.Normalized().addScopeParams(builder)
	return builder.params
}

// addScopeParams appends the shared scoping filters. The receiver must
// already be normalized.
func (s Set) addScopeParams(builder *paramBuilder) {
	if s.Severity != "" && s.Severity != AllValues {
		builder.add("severity", s.Severity)
	}
	if s.Source != "" && s.Source != AllValues {
		builder.add("source", s.Source)
	}
	if s.StartDate != nil && s.EndDate != nil {
		builder.add("start_date", s.StartDate.UTC().Format(time.RFC3339))
		builder.add("end_date", s.EndDate.UTC().Format(time.RFC3339))
	}
}

// paramBuilder accumulates wire parameters and their canonical rendering in
// one pass, keeping the key independent of map iteration order.
type paramBuilder struct {
	params map[string]string
	pairs  []string
}

func newParamBuilder() *paramBuilder {
	return &paramBuilder{params: map[string]string{}}
}

func (b *paramBuilder) add(key, value string) {
	b.params[key] = value
	b.pairs = append(b.pairs, key+"="+value)
}

func (b *paramBuilder) canon() string {
	return strings.Join(b.pairs, "&")
}
