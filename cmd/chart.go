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

	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/logdeck/logdeck-cli/filter"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show time-bucketed log counts for trend inspection",
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

		groupBy, err := cmd.Flags().GetString("group-by")
		if err != nil {
			log.Fatal(err)
		}

		chart, err := newLogService().ChartData(context.Background(), filters, groupBy)
		if err != nil {
			log.Fatal(describeError(err))
		}

		output := []string{"BUCKET|TOTAL|DEBUG|INFO|WARNING|ERROR|CRITICAL"}
		for _, point := range chart.Data {
			output = append(output, fmt.Sprintf("%s|%d|%d|%d|%d|%d|%d",
				point.Timestamp, point.Total,
				point.Debug, point.Info, point.Warning, point.Error, point.Critical))
		}

		fmt.Println(columnize.SimpleFormat(output))
		fmt.Printf("grouped by %s\n", chart.GroupBy)
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)

	addFilterFlags(chartCmd)
	chartCmd.Flags().String("group-by", "", "Bucket size (hour, day, week, month)")
}
