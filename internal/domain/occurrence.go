package domain

import "time"

// Occurrence predicates compare local calendar days only: every date is
// truncated to midnight in its own location and no timezone conversion is
// performed. Cross-timezone correctness (a list shared between users in
// different zones) is out of scope.

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// OccursOn reports whether the task is due on the given date. Rules apply in
// precedence order, short-circuiting on the first one configured:
// explicit due date, specific day of week, then the list cadence.
func (t *Task) OccursOn(date time.Time) bool {
	day := StartOfDay(date)

	if t.dueDate != nil {
		return StartOfDay(*t.dueDate).Equal(day)
	}

	if t.specificDayOfWeek != nil {
		return int(day.Weekday()) == t.specificDayOfWeek.Int()
	}

	switch t.listType {
	case ListTypeDaily:
		return true
	case ListTypeWeekly:
		return day.Weekday() == time.Sunday
	case ListTypeMonthly:
		return day.Day() == 1
	case ListTypeYearly:
		return day.Month() == time.January && day.Day() == 1
	default:
		// CUSTOM and FINISHED lists carry no implicit schedule.
		return false
	}
}

// NextWeekday returns the next date whose weekday matches w, strictly after
// ref unless allowSame is set and ref itself matches.
func NextWeekday(ref time.Time, w Weekday, allowSame bool) time.Time {
	day := StartOfDay(ref)

	delta := (w.Int() - int(day.Weekday()) + 7) % 7
	if delta == 0 && !allowSame {
		delta = 7
	}

	return day.AddDate(0, 0, delta)
}

// FirstOfNextMonth returns the first day of the month after ref's month.
// time.Date normalizes month 13, so the December rollover needs no special
// casing.
func FirstOfNextMonth(ref time.Time) time.Time {
	day := StartOfDay(ref)

	return time.Date(day.Year(), day.Month()+1, 1, 0, 0, 0, 0, day.Location())
}

// FirstOfNextYear returns January 1st of the year after ref's year.
func FirstOfNextYear(ref time.Time) time.Time {
	day := StartOfDay(ref)

	return time.Date(day.Year()+1, time.January, 1, 0, 0, 0, 0, day.Location())
}

// NextListOccurrence returns the next cadence occurrence strictly after ref.
// The second return value is false for cadences without an implicit schedule.
func NextListOccurrence(listType ListType, ref time.Time) (time.Time, bool) {
	switch listType {
	case ListTypeWeekly:
		return NextWeekday(ref, Sunday, false), true
	case ListTypeMonthly:
		return FirstOfNextMonth(ref), true
	case ListTypeYearly:
		return FirstOfNextYear(ref), true
	default:
		return time.Time{}, false
	}
}

// EffectiveDueDate resolves the date a days-before reminder counts back from:
// the task's own due date, else the next occurrence of its weekday, else the
// next list-cadence occurrence. The second return value is false when the task
// has nothing to anchor a reminder to.
func (t *Task) EffectiveDueDate(ref time.Time) (time.Time, bool) {
	if t.dueDate != nil {
		return StartOfDay(*t.dueDate), true
	}

	if t.specificDayOfWeek != nil {
		return NextWeekday(ref, *t.specificDayOfWeek, false), true
	}

	return NextListOccurrence(t.listType, ref)
}
