package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotStart(t *testing.T) {
	ref := time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		dateLabel string
		timeLabel string
		ref       time.Time
		expected  time.Time
		expectErr bool
	}{
		{
			name:      "Standard labels",
			dateLabel: "Mon, Jan 6",
			timeLabel: "9:00 AM - 10:00 AM",
			ref:       ref,
			expected:  time.Date(2026, time.January, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "Afternoon slot",
			dateLabel: "Sun, Nov 16",
			timeLabel: "2:00 PM - 3:00 PM",
			ref:       ref,
			expected:  time.Date(2026, time.November, 16, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "No weekday prefix",
			dateLabel: "Jan 6",
			timeLabel: "8:00 AM - 9:00 AM",
			ref:       ref,
			expected:  time.Date(2026, time.January, 6, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "Bare start time without range",
			dateLabel: "Mon, Jan 6",
			timeLabel: "12:00 PM",
			ref:       ref,
			expected:  time.Date(2026, time.January, 6, 12, 0, 0, 0, time.UTC),
		},
		{
			name:      "Extra whitespace",
			dateLabel: "Mon,  Jan  6",
			timeLabel: " 9:00 AM  -  10:00 AM ",
			ref:       ref,
			expected:  time.Date(2026, time.January, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "Year wrap: January slot seen in December",
			dateLabel: "Tue, Jan 6",
			timeLabel: "9:00 AM - 10:00 AM",
			ref:       time.Date(2026, time.December, 28, 12, 0, 0, 0, time.UTC),
			expected:  time.Date(2027, time.January, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name:      "Garbage date label",
			dateLabel: "sometime soon",
			timeLabel: "9:00 AM - 10:00 AM",
			ref:       ref,
			expectErr: true,
		},
		{
			name:      "Garbage time label",
			dateLabel: "Mon, Jan 6",
			timeLabel: "morning-ish",
			ref:       ref,
			expectErr: true,
		},
		{
			name:      "Empty labels",
			dateLabel: "",
			timeLabel: "",
			ref:       ref,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, err := SlotStart(tc.dateLabel, tc.timeLabel, tc.ref)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, start)
			}
		})
	}
}
