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
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/logdeck/logdeck-cli/api"
	"github.com/logdeck/logdeck-cli/filter"
	"github.com/logdeck/logdeck-cli/service"
)

var severityColor = map[api.Severity]func(format string, a ...interface{}) string{
	api.SeverityDebug:    color.WhiteString,
	api.SeverityInfo:     color.CyanString,
	api.SeverityWarning:  color.YellowString,
	api.SeverityError:    color.RedString,
	api.SeverityCritical: color.MagentaString,
}

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "List logs with filtering, sorting and pagination",
	Run: func(cmd *cobra.Command, args []string) {
		filters, err := filtersFromFlags(cmd)
		if err != nil {
			log.Fatal(err)
		}

		result, err := runLogsCmd(newLogService(), filters)
		if err != nil {
			log.Fatal(describeError(err))
		}

		printLogTable(result.Logs)
		fmt.Printf("page %d/%d, %s logs total\n",
			result.Page, result.TotalPages, humanize.Comma(int64(result.Total)))
	},
}

func runLogsCmd(svc *service.LogService, filters filter.Set) (*api.LogListResponse, error) {
	return svc.List(context.Background(), filters)
}

// filtersFromFlags builds the raw filter state of a listing command.
func filtersFromFlags(cmd *cobra.Command) (filter.Set, error) {
	filters := filter.Set{}

	var err error
	if filters.Search, err = cmd.Flags().GetString("search"); err != nil {
		return filters, err
	}
	if filters.Severity, err = cmd.Flags().GetString("severity"); err != nil {
		return filters, err
	}
	if filters.Source, err = cmd.Flags().GetString("source"); err != nil {
		return filters, err
	}
	if filters.SortBy, err = cmd.Flags().GetString("sort-by"); err != nil {
		return filters, err
	}
	if filters.SortOrder, err = cmd.Flags().GetString("sort-order"); err != nil {
		return filters, err
	}
	if filters.Page, err = cmd.Flags().GetInt("page"); err != nil {
		return filters, err
	}
	if filters.PageSize, err = cmd.Flags().GetInt("page-size"); err != nil {
		return filters, err
	}

	filters.StartDate, err = timeFromFlag(cmd, "from")
	if err != nil {
		return filters, err
	}
	filters.EndDate, err = timeFromFlag(cmd, "to")
	if err != nil {
		return filters, err
	}

	return filters, nil
}

// timeFromFlag parses an optional RFC3339 flag value.
func timeFromFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value %q, expected RFC3339 (example: 2024-05-01T12:00:00Z)", name, raw)
	}
	return &parsed, nil
}

func printLogTable(logs []*api.LogEntry) {
	output := []string{strings.Join([]string{"ID", "TIMESTAMP", "SEVERITY", "SOURCE", "MESSAGE"}, "|")}

	for _, entry := range logs {
		row := []string{
			fmt.Sprintf("%d", entry.Id),
			entry.Timestamp.UTC().Format("2006-01-02T15:04:05Z"),
			coloredSeverity(entry.Severity),
			entry.Source,
			entry.Message,
		}
		output = append(output, strings.Join(row, "|"))
	}

	fmt.Println(columnize.SimpleFormat(output))
}

func coloredSeverity(severity api.Severity) string {
	colorize, ok := severityColor[severity]
	if !ok {
		return string(severity)
	}
	return colorize("%s", string(severity))
}

// addFilterFlags registers the filter flags shared by listing-shaped
// commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("severity", "", "Filter by severity (DEBUG, INFO, WARNING, ERROR, CRITICAL or all)")
	cmd.Flags().String("source", "", "Filter by source system")
	cmd.Flags().String("from", "", "Start of the date range, RFC3339")
	cmd.Flags().String("to", "", "End of the date range, RFC3339")
}

func init() {
	rootCmd.AddCommand(logsCmd)

	addFilterFlags(logsCmd)
	logsCmd.Flags().String("search", "", "Search in the log message")
	logsCmd.Flags().String("sort-by", "", "Sort field (timestamp, severity, source)")
	logsCmd.Flags().String("sort-order", "", "Sort order (asc, desc)")
	logsCmd.Flags().Int("page", 0, "Page number, 1-based")
	logsCmd.Flags().Int("page-size", 0, "Logs per page")
}
