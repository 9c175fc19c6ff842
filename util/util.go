package util

import (
	"fmt"
	"time"
)

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// ParseDate parses dates with day, month or year precision, as they
// appear in catalog records: "2009-08-01", "2009-08" or "2009".
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("time data '%s' does not match formats %v", value, dateLayouts)
}
