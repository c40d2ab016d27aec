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

import "fmt"

// Query key families. Invalidation cascades address cached results by
// family, never by individual key.
const (
	FamilyLogs        = "logs"
	FamilyAggregation = "log-aggregation"
	FamilyChartData   = "chart-data"
	FamilyMetadata    = "metadata"
)

// Key identifies one cached result set: a domain family plus the canonical
// rendering of the parameters that produced it. Keys are plain comparable
// values, two equivalent filter states always yield the same Key.
type Key struct {
	Family string
	Canon  string
}

func (k Key) String() string {
	if k.Canon == "" {
		return k.Family
	}
	return k.Family + "?" + k.Canon
}

// LogKey addresses the cached snapshot of a single log entry.
func LogKey(id int) Key {
	return Key{Family: LogFamily(id)}
}

// LogFamily is the per-entry key family, "log:<id>".
func LogFamily(id int) string {
	return fmt.Sprintf("log:%d", id)
}

// MetadataKey addresses the cached service metadata.
func MetadataKey() Key {
	return Key{Family: FamilyMetadata}
}
