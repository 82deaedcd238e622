package domain

import "fmt"

// Timeframe selects which schedule a reminder follows. It determines which of
// the other Reminder fields are meaningful.
type Timeframe string

const (
	TimeframeSpecificDate Timeframe = "SPECIFIC_DATE"
	TimeframeEveryDay     Timeframe = "EVERY_DAY"
	TimeframeEveryWeek    Timeframe = "EVERY_WEEK"
	TimeframeEveryMonth   Timeframe = "EVERY_MONTH"
	TimeframeEveryYear    Timeframe = "EVERY_YEAR"
)

func NewTimeframe(t string) (Timeframe, error) {
	switch t {
	case string(TimeframeSpecificDate), string(TimeframeEveryDay),
		string(TimeframeEveryWeek), string(TimeframeEveryMonth),
		string(TimeframeEveryYear):
		return Timeframe(t), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTimeframe, t)
	}
}

// SpecificDate refines TimeframeSpecificDate reminders.
type SpecificDate string

const (
	SpecificDateStartOfWeek  SpecificDate = "START_OF_WEEK"
	SpecificDateStartOfMonth SpecificDate = "START_OF_MONTH"
	SpecificDateStartOfYear  SpecificDate = "START_OF_YEAR"
	SpecificDateCustom       SpecificDate = "CUSTOM_DATE"
)

func NewSpecificDate(s string) (SpecificDate, error) {
	switch s {
	case string(SpecificDateStartOfWeek), string(SpecificDateStartOfMonth),
		string(SpecificDateStartOfYear), string(SpecificDateCustom):
		return SpecificDate(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSpecificDate, s)
	}
}
