// Package parse derives comparable instants from the display-string date and
// time labels carried on reservations. Labels are free-form presentation
// values ("Mon, Jan 6", "9:00 AM - 10:00 AM"); parsing can fail and callers
// must treat a failure as "sort last", never as a hard error.
package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var wsRe = regexp.MustCompile(`\s+`)

const (
	dateLayout = "Jan 2"
	timeLayout = "3:04 PM"
)

// SlotStart combines a date label and a time label into the slot's starting
// instant (UTC). The labels carry no year, so it is inferred from ref: the
// candidate in ref's year is used unless it falls more than six months before
// ref, in which case the slot is taken to be in the following year (a
// December date looked at in January).
func SlotStart(dateLabel, timeLabel string, ref time.Time) (time.Time, error) {
	day, err := parseDateLabel(dateLabel)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := parseTimeLabel(timeLabel)
	if err != nil {
		return time.Time{}, err
	}

	start := time.Date(ref.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	if ref.Sub(start) > 180*24*time.Hour {
		start = start.AddDate(1, 0, 0)
	}
	return start, nil
}

// parseDateLabel extracts the month and day from a label such as
// "Mon, Jan 6". The weekday prefix is decorative and is dropped; labels
// without it ("Jan 6") are accepted too.
func parseDateLabel(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, ","); i >= 0 {
		s = strings.TrimSpace(s[i+1:])
	}
	s = wsRe.ReplaceAllString(s, " ")

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date label %q: %w", raw, err)
	}
	return t, nil
}

// parseTimeLabel extracts the starting clock time from a label such as
// "9:00 AM - 10:00 AM". Only the segment before the separator matters; a
// bare "9:00 AM" is accepted as well.
func parseTimeLabel(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, sep := range []string{" - ", " – ", "-"} {
		if i := strings.Index(s, sep); i >= 0 {
			s = strings.TrimSpace(s[:i])
			break
		}
	}
	s = wsRe.ReplaceAllString(s, " ")

	t, err := time.Parse(timeLayout, strings.ToUpper(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse time label %q: %w", raw, err)
	}
	return t, nil
}
