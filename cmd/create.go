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

	"github.com/spf13/cobra"

	"github.com/logdeck/logdeck-cli/api"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new log entry",
	Run: func(cmd *cobra.Command, args []string) {
		severity, _ := cmd.Flags().GetString("severity")
		source, _ := cmd.Flags().GetString("source")
		message, _ := cmd.Flags().GetString("message")

		req := api.CreateLogRequest{
			Severity: api.Severity(severity),
			Source:   source,
			Message:  message,
		}

		timestamp, err := timeFromFlag(cmd, "timestamp")
		if err != nil {
			log.Fatal(err)
		}
		req.Timestamp = timestamp

		if !req.Severity.Valid() {
			log.Fatalf("invalid severity %q, expected one of %v", severity, api.Severities)
		}

		created, err := newLogService().Create(context.Background(), req)
		if err != nil {
			log.Fatal(describeError(err))
		}

		fmt.Printf("created log %d\n", created.Id)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().String("severity", "", "Severity level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	createCmd.Flags().String("source", "", "Source system")
	createCmd.Flags().String("message", "", "Log message")
	createCmd.Flags().String("timestamp", "", "Event time, RFC3339 (defaults to now on the server)")

	createCmd.MarkFlagRequired("severity")
	createCmd.MarkFlagRequired("source")
	createCmd.MarkFlagRequired("message")
}
