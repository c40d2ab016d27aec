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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logdeck/logdeck-cli/api"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update fields of an existing log entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("invalid log id %q", args[0])
		}

		// Only flags the user actually set become part of the partial
		// update body.
		req := api.UpdateLogRequest{}
		changed := false

		if cmd.Flags().Changed("severity") {
			raw, _ := cmd.Flags().GetString("severity")
			severity := api.Severity(raw)
			if !severity.Valid() {
				log.Fatalf("invalid severity %q, expected one of %v", raw, api.Severities)
			}
			req.Severity = &severity
			changed = true
		}
		if cmd.Flags().Changed("source") {
			source, _ := cmd.Flags().GetString("source")
			req.Source = &source
			changed = true
		}
		if cmd.Flags().Changed("message") {
			message, _ := cmd.Flags().GetString("message")
			req.Message = &message
			changed = true
		}
		if cmd.Flags().Changed("timestamp") {
			timestamp, err := timeFromFlag(cmd, "timestamp")
			if err != nil {
				log.Fatal(err)
			}
			req.Timestamp = timestamp
			changed = true
		}

		if !changed {
			log.Fatal("nothing to update, set at least one of --severity, --source, --message, --timestamp")
		}

		updated, err := newLogService().Update(context.Background(), id, req)
		if err != nil {
			log.Fatal(describeError(err))
		}

		fmt.Printf("updated log %d\n", updated.Id)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().String("severity", "", "New severity level")
	updateCmd.Flags().String("source", "", "New source system")
	updateCmd.Flags().String("message", "", "New log message")
	updateCmd.Flags().String("timestamp", "", "New event time, RFC3339")
}
