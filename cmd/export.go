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
	"os"

	"github.com/spf13/cobra"

	"github.com/logdeck/logdeck-cli/filter"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export filtered logs as a CSV file",
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

		export, err := newLogService().ExportCSV(context.Background(), filters)
		if err != nil {
			log.Fatal(describeError(err))
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			log.Fatal(err)
		}
		if output == "" {
			output = export.Filename
		}

		if err := os.WriteFile(output, []byte(export.Content), 0644); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("wrote %s\n", output)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	addFilterFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output file (default logs_export.csv)")
}
