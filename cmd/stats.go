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

	"github.com/dustin/go-humanize"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/logdeck/logdeck-cli/filter"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show log totals grouped by severity, source and date",
	Run: func(cmd *cobra.Command, args []string) {
		filters := filter.Set{}

		var err error
		if filters.Severity, err = cmd.Flags().GetString("severity"); err != nil {
			log.Fatal(err)
		}
		if filters.Source, err = cmd.Flags().GetString("source"); err != nil {
			log.Fatal(err)
		}
		if filters.StartDate, err = timeFromFlag(cmd, "from"); err != nil {
			log.Fatal(err)
		}
		if filters.EndDate, err = timeFromFlag(cmd, "to"); err != nil {
			log.Fatal(err)
		}

		aggregation, err := newLogService().Aggregation(context.Background(), filters)
		if err != nil {
			log.Fatal(describeError(err))
		}

		fmt.Printf("%s logs in scope\n\n", humanize.Comma(int64(aggregation.TotalLogs)))

		output := []string{"SEVERITY|COUNT"}
		for _, bucket := range aggregation.BySeverity {
			output = append(output, fmt.Sprintf("%s|%d", coloredSeverity(bucket.Severity), bucket.Count))
		}
		output = append(output, "", "SOURCE|COUNT")
		for _, bucket := range aggregation.BySource {
			output = append(output, fmt.Sprintf("%s|%d", bucket.Source, bucket.Count))
		}
		output = append(output, "", "DATE|COUNT")
		for _, bucket := range aggregation.ByDate {
			output = append(output, fmt.Sprintf("%s|%d", bucket.Date, bucket.Count))
		}

		fmt.Println(columnize.SimpleFormat(output))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	addFilterFlags(statsCmd)
}
