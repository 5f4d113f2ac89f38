package dial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

func parseText(value string, layouts []string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("text is empty")
	}
	if loc == nil {
		loc = time.Local
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return fromEpoch(n).t.In(loc), nil
	}
	return FuzzParseTimeLoc(layouts, value, loc)
}

// Parse value with each of the layouts until one of them succeeds, loc defaults to UTC.
func FuzzParseTimeLoc(layouts []string, value string, loc *time.Location) (time.Time, error) {
	if len(layouts) < 1 {
		return time.Time{}, errors.New("layouts is empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, f := range layouts {
		t, err := time.ParseInLocation(f, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse time '%s'", value)
}
