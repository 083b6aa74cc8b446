package timeslot

import "time"

const (
	dateLayout = "2006-01-02"
	slotLayout = "3:04 PM"
)

// DefaultTimezone is the salon's operating timezone. Bookings carry wall
// clock labels, so parsing pins them here.
const DefaultTimezone = "America/New_York"

func location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Combine derives the sortable timestamp from a calendar date and a 12-hour
// slot label. "12:00 AM" maps to 00:00 and "12:00 PM" to 12:00.
func Combine(date, slot string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+slotLayout, date+" "+slot, location())
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD day.
func ValidDate(date string) bool {
	_, err := time.ParseInLocation(dateLayout, date, location())
	return err == nil
}

// DaySlots is the canonical bookable grid shown to clients: hourly labels
// from opening to last seating.
func DaySlots() []string {
	return []string{
		"9:00 AM",
		"10:00 AM",
		"11:00 AM",
		"12:00 PM",
		"1:00 PM",
		"2:00 PM",
		"3:00 PM",
		"4:00 PM",
		"5:00 PM",
		"6:00 PM",
	}
}
