package domain

import "fmt"

// Weekday is a day of the week in the 0-6 Sunday-first convention used by
// the persisted specificDayOfWeek column.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

func NewWeekday(n int) (Weekday, error) {
	if n < 0 || n > 6 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, n)
	}

	return Weekday(n), nil
}

func (w Weekday) Int() int {
	return int(w)
}

func (w Weekday) String() string {
	if w < 0 || w > 6 {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}

	return weekdayNames[w]
}
