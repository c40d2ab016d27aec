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

package querycache

import "github.com/logdeck/logdeck-cli/filter"

// Mutation names a write operation against the log collection.
type Mutation string

const (
	MutationCreateLog Mutation = "create-log"
	MutationUpdateLog Mutation = "update-log"
	MutationDeleteLog Mutation = "delete-log"
)

// CascadeFamilies is the declarative invalidation table: the exact and
// exhaustive set of key families a completed mutation makes stale.
//
//	create log  → logs, log-aggregation, chart-data, metadata
//	update log  → logs, log:<id>, log-aggregation, chart-data
//	delete log  → logs, log-aggregation, chart-data (log:<id> is evicted,
//	              not merely marked stale)
//
// Metadata is only invalidated by create, the one mutation that can
// introduce a new source.
func CascadeFamilies(mutation Mutation, id int) []string {
	switch mutation {
	case MutationCreateLog:
		return []string{filter.FamilyLogs, filter.FamilyAggregation, filter.FamilyChartData, filter.FamilyMetadata}
	case MutationUpdateLog:
		return []string{filter.FamilyLogs, filter.LogFamily(id), filter.FamilyAggregation, filter.FamilyChartData}
	case MutationDeleteLog:
		return []string{filter.FamilyLogs, filter.FamilyAggregation, filter.FamilyChartData}
	}
	return nil
}

// ApplyCascade fires the invalidation table for a completed mutation. For
// deletes, the single-resource entry is removed from the cache entirely.
func (s *Store) ApplyCascade(mutation Mutation, id int) {
	for _, family := range CascadeFamilies(mutation, id) {
		s.Invalidate(family)
	}

	if mutation == MutationDeleteLog {
		s.Evict(filter.LogKey(id))
	}
}
