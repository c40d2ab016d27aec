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

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single log entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("invalid log id %q", args[0])
		}

		entry, err := newLogService().Get(context.Background(), id)
		if err != nil {
			log.Fatal(describeError(err))
		}

		printLogEntry(entry)
	},
}

func printLogEntry(entry *api.LogEntry) {
	fmt.Printf("ID:        %d\n", entry.Id)
	fmt.Printf("Timestamp: %s\n", entry.Timestamp.UTC().Format("2006-01-02T15:04:05Z"))
	fmt.Printf("Severity:  %s\n", coloredSeverity(entry.Severity))
	fmt.Printf("Source:    %s\n", entry.Source)
	fmt.Printf("Message:   %s\n", entry.Message)
	fmt.Printf("Created:   %s\n", entry.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"))
	fmt.Printf("Updated:   %s\n", entry.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"))
}

func init() {
	rootCmd.AddCommand(getCmd)
}
