package domain

import "fmt"

// ListType is the cadence of the list a task belongs to. It acts as the
// fallback occurrence rule for tasks without an explicit due date or weekday.
type ListType string

const (
	ListTypeDaily    ListType = "DAILY"
	ListTypeWeekly   ListType = "WEEKLY"
	ListTypeMonthly  ListType = "MONTHLY"
	ListTypeYearly   ListType = "YEARLY"
	ListTypeCustom   ListType = "CUSTOM"
	ListTypeFinished ListType = "FINISHED"
)

func NewListType(t string) (ListType, error) {
	switch t {
	case string(ListTypeDaily), string(ListTypeWeekly), string(ListTypeMonthly),
		string(ListTypeYearly), string(ListTypeCustom), string(ListTypeFinished):
		return ListType(t), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidListType, t)
	}
}
