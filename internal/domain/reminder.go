package domain

// Reminder is the normalized, UI-facing form of one reminder rule. It is a
// value, not an entity: server-derived reminders get deterministic ids coupled
// to their rule shape ("days-before-7", "day-of-week-1"), so editing a rule
// changes its id. Nothing may rely on id stability across edits.
type Reminder struct {
	ID           string
	Timeframe    Timeframe
	Time         string // "HH:mm", 24-hour
	SpecificDate SpecificDate
	CustomDate   string // ISO-8601 date-time, only with SpecificDateCustom
	DayOfWeek    *Weekday
	DaysBefore   int // >0 switches the rule to "N days before due date"
	HasAlarm     bool
	Location     string
}

const DefaultReminderTime = "09:00"

// TimeOrDefault returns the reminder time, falling back to 09:00 when unset.
func (r Reminder) TimeOrDefault() string {
	if r.Time == "" {
		return DefaultReminderTime
	}

	return r.Time
}

// IsDaysBefore reports whether the days-before rule governs this reminder.
// When true it overrides the timeframe-based schedule.
func (r Reminder) IsDaysBefore() bool {
	return r.DaysBefore > 0
}

// WeekdayOrMonday returns the configured weekday for weekly reminders,
// defaulting to Monday when absent.
func (r Reminder) WeekdayOrMonday() Weekday {
	if r.DayOfWeek == nil {
		return Monday
	}

	return *r.DayOfWeek
}
