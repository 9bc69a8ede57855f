package contractform

import "time"

// DateLayout is the wire format for contract dates.
const DateLayout = "2006-01-02"

// MinContractDays is the minimum contract duration in days.
const MinContractDays = 28

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays returns the date string shifted by the given number of days.
// Invalid input is returned unchanged.
func AddDays(value string, days int) string {
	t, err := ParseDate(value)
	if err != nil {
		return value
	}
	return FormatDate(t.AddDate(0, 0, days))
}

// MinEndDate returns the earliest permitted end date for a start date.
func MinEndDate(startDate string) string {
	return AddDays(startDate, MinContractDays)
}

// validDate reports whether value is a well-formed YYYY-MM-DD date.
func validDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// dateBefore reports whether a sorts strictly before b. Both must be
// YYYY-MM-DD, which compares correctly as plain strings.
func dateBefore(a, b string) bool {
	return a < b
}
