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
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show the severity levels, sources and limits known to the service",
	Run: func(cmd *cobra.Command, args []string) {
		metadata, err := newLogService().Metadata(context.Background())
		if err != nil {
			log.Fatal(describeError(err))
		}

		fmt.Printf("Severity levels: %s\n", strings.Join(metadata.SeverityLevels, ", "))
		fmt.Printf("Sources:         %s\n", strings.Join(metadata.Sources, ", "))
		if metadata.DateRange.Earliest != nil && metadata.DateRange.Latest != nil {
			fmt.Printf("Date range:      %s .. %s\n", *metadata.DateRange.Earliest, *metadata.DateRange.Latest)
		}
		fmt.Printf("Total logs:      %s\n", humanize.Comma(int64(metadata.TotalLogs)))
		fmt.Printf("Sort fields:     %s\n", strings.Join(metadata.SortFields, ", "))
		fmt.Printf("Page size:       default %d, max %d\n",
			metadata.Pagination.DefaultPageSize, metadata.Pagination.MaxPageSize)
	},
}

func init() {
	rootCmd.AddCommand(metadataCmd)
}
