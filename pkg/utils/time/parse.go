// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the machine and human date formats found in article metadata

package time

import (
	"strings"
	"time"
)

// Formats seen in article metadata blocks, machine formats first
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan. 2, 2006",
	"2 January 2006",
	"02 January 2006",
	"2 Jan 2006",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Monday, January 2, 2006",
	"01/02/2006",
	"January 2006",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// The zero time is returned when no format matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}
