package daterange

import (
	"fmt"
	"time"
)

// Layout is how partition dates are suffixed onto table names.
const Layout = "20060102"

var supportedLayouts = []string{Layout, time.DateOnly}

// Parse accepts dates formatted as YYYYMMDD or YYYY-MM-DD.
func Parse(value string) (time.Time, error) {
	for _, layout := range supportedLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("failed to parse date %q, expected YYYYMMDD or YYYY-MM-DD", value)
}

// Expand returns every calendar day between start and end (both inclusive) formatted with [Layout].
// If start is after end, there are no days.
func Expand(start, end time.Time) []string {
	start = truncateToDay(start)
	end = truncateToDay(end)

	var dates []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(Layout))
	}

	return dates
}

func ExpandStrings(start, end string) ([]string, error) {
	startTime, err := Parse(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}

	endTime, err := Parse(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %w", err)
	}

	return Expand(startTime, endTime), nil
}

func truncateToDay(ts time.Time) time.Time {
	year, month, day := ts.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
