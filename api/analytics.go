package api

import "time"

// SeverityCount is one aggregation bucket keyed by severity.
type SeverityCount struct {
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
}

// SourceCount is one aggregation bucket keyed by source.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// DateCount is one aggregation bucket keyed by calendar date.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AggregationResponse is the body of GET /logs/aggregation.
type AggregationResponse struct {
	TotalLogs      int             `json:"total_logs"`
	DateRangeStart *time.Time      `json:"date_range_start"`
	DateRangeEnd   *time.Time      `json:"date_range_end"`
	BySeverity     []SeverityCount `json:"by_severity"`
	BySource       []SourceCount   `json:"by_source"`
	ByDate         []DateCount     `json:"by_date"`
}

// ChartPoint is one time bucket of the chart-data series. The bucket label
// format depends on the requested grouping.
type ChartPoint struct {
	Timestamp string `json:"timestamp"`
	Total     int    `json:"total"`
	Debug     int    `json:"DEBUG"`
	Info      int    `json:"INFO"`
	Warning   int    `json:"WARNING"`
	Error     int    `json:"ERROR"`
	Critical  int    `json:"CRITICAL"`
}

// ChartDataResponse is the body of GET /logs/chart-data.
type ChartDataResponse struct {
	Data      []ChartPoint       `json:"data"`
	GroupBy   string             `json:"group_by"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Filters   map[string]*string `json:"filters"`
}

// DateRangeMetadata bounds the timestamps known to the service.
type DateRangeMetadata struct {
	Earliest *string `json:"earliest"`
	Latest   *string `json:"latest"`
}

// PaginationMetadata carries the service's paging limits.
type PaginationMetadata struct {
	DefaultPageSize int `json:"default_page_size"`
	MaxPageSize     int `json:"max_page_size"`
}

// MetadataResponse is the body of GET /logs/metadata, used to populate
// dashboard dropdowns and filter bounds.
type MetadataResponse struct {
	SeverityLevels []string           `json:"severity_levels"`
	Sources        []string           `json:"sources"`
	DateRange      DateRangeMetadata  `json:"date_range"`
	SeverityStats  map[string]int     `json:"severity_stats"`
	TotalLogs      int                `json:"total_logs"`
	SortFields     []string           `json:"sort_fields"`
	Pagination     PaginationMetadata `json:"pagination"`
}
