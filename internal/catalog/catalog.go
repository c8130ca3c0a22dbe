// Package catalog holds the static table of bookable time slots. The table
// is fixed at build time; adding or removing slots is a deployment action,
// not a runtime operation.
package catalog

// TimeSlotDefinition describes one fixed hourly window of an operating day.
type TimeSlotDefinition struct {
	ID        int    `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

// slots covers the nine hourly windows of a standard operating day,
// 8:00 AM through 5:00 PM.
var slots = []TimeSlotDefinition{
	{ID: 1, StartTime: "8:00 AM", EndTime: "9:00 AM", Label: "8:00 AM - 9:00 AM"},
	{ID: 2, StartTime: "9:00 AM", EndTime: "10:00 AM", Label: "9:00 AM - 10:00 AM"},
	{ID: 3, StartTime: "10:00 AM", EndTime: "11:00 AM", Label: "10:00 AM - 11:00 AM"},
	{ID: 4, StartTime: "11:00 AM", EndTime: "12:00 PM", Label: "11:00 AM - 12:00 PM"},
	{ID: 5, StartTime: "12:00 PM", EndTime: "1:00 PM", Label: "12:00 PM - 1:00 PM"},
	{ID: 6, StartTime: "1:00 PM", EndTime: "2:00 PM", Label: "1:00 PM - 2:00 PM"},
	{ID: 7, StartTime: "2:00 PM", EndTime: "3:00 PM", Label: "2:00 PM - 3:00 PM"},
	{ID: 8, StartTime: "3:00 PM", EndTime: "4:00 PM", Label: "3:00 PM - 4:00 PM"},
	{ID: 9, StartTime: "4:00 PM", EndTime: "5:00 PM", Label: "4:00 PM - 5:00 PM"},
}

// Slots returns the ordered slot table for an operating day. The returned
// slice is a copy; callers may not mutate the catalog.
func Slots() []TimeSlotDefinition {
	out := make([]TimeSlotDefinition, len(slots))
	copy(out, slots)
	return out
}

// ByLabel resolves a slot by its display label. The second return value is
// false when the label is not part of the catalog.
func ByLabel(label string) (TimeSlotDefinition, bool) {
	for _, s := range slots {
		if s.Label == label {
			return s, true
		}
	}
	return TimeSlotDefinition{}, false
}
