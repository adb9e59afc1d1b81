// Package timeutil normalizes caller-supplied datetime strings into
// the ISO-8601 UTC form the Clockodo API expects. Normalization runs
// before any network call, so a malformed input never causes a partial
// side effect.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// InvalidFormatError reports a datetime string that could not be
// parsed. It names the offending input.
type InvalidFormatError struct {
	Value string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid datetime format: %q", e.Value)
}

// layouts accepted after the space separator has been replaced with T.
var layouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeDateTime converts a datetime string to ISO-8601:
//
//	"2025-01-01 09:00:00"       -> "2025-01-01T09:00:00Z"
//	"2025-01-01T09:00:00"       -> "2025-01-01T09:00:00Z"
//	"2025-01-01T09:00:00Z"      -> unchanged
//	"2025-01-01T09:00:00+01:00" -> unchanged
//
// The operation is idempotent. Inputs that cannot be parsed return an
// *InvalidFormatError.
func NormalizeDateTime(value string) (string, error) {
	normalized := strings.Replace(value, " ", "T", 1)

	if !parseable(normalized) {
		return "", &InvalidFormatError{Value: value}
	}

	if !hasZoneMarker(normalized) {
		normalized += "Z"
	}
	return normalized, nil
}

func parseable(value string) bool {
	probe := value
	if strings.HasSuffix(probe, "Z") {
		probe = strings.TrimSuffix(probe, "Z") + "+00:00"
	}
	for _, layout := range layouts {
		if _, err := time.Parse(layout, probe); err == nil {
			return true
		}
	}
	return false
}

// hasZoneMarker reports whether the string already carries an explicit
// offset or Z suffix. The date part always contains '-' characters, so
// only the time part after T is inspected for a negative offset.
func hasZoneMarker(value string) bool {
	if strings.HasSuffix(value, "Z") {
		return true
	}
	idx := strings.Index(value, "T")
	tail := value
	if idx >= 0 {
		tail = value[idx+1:]
	}
	return strings.Contains(tail, "+") || strings.Contains(tail, "-")
}
