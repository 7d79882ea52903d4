package sqlite

import (
	"fmt"
	"time"
)

// scanner abstracts over *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// dateLayout is the storage format for date-only columns.
const dateLayout = "2006-01-02"

// timeLayouts lists the layouts TEXT timestamp columns may come back in,
// depending on how the value was bound.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	dateLayout,
}

// parseTime parses a TEXT timestamp column into a UTC time.Time.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time value %q", s)
}

// parseDate parses a date-only TEXT column.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date value %q", s)
	}
	return t, nil
}

// formatDate renders a date-only column value.
func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
