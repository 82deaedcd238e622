// Package format renders normalized reminder descriptors as display strings.
// It is shared by the API responses and by callers without an i18n layer: a
// nil TranslateFunc yields the English defaults.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tasks-management/reminder-engine/internal/domain"
)

// TranslateOptions mirrors the i18n call contract of the web client: the
// English text travels as the default value, and Count drives pluralization.
type TranslateOptions struct {
	DefaultValue string
	Count        int
}

// TranslateFunc looks up a display fragment by key. Translation substitutes
// fragment text only; word order and punctuation are fixed by the caller.
type TranslateFunc func(key string, opts TranslateOptions) string

// FormatTimeForDisplay renders an "HH:mm" time for display. With use24h the
// output stays zero-padded 24-hour ("14:30"); otherwise it becomes 12-hour
// with an AM/PM suffix ("2:30 PM"). Unparseable fragments fall back to 9:00.
func FormatTimeForDisplay(timeStr string, use24h bool) string {
	trimmed := strings.TrimSpace(timeStr)
	if trimmed == "" {
		trimmed = domain.DefaultReminderTime
	}

	hourPart, minutePart, _ := strings.Cut(trimmed, ":")

	hours, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		hours = 9
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(minutePart))
	if err != nil {
		minutes = 0
	}

	if use24h {
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}

	h12 := hours % 12
	if h12 == 0 {
		h12 = 12
	}

	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", h12, minutes, meridiem)
}

// FormatReminder renders one descriptor as a human-readable schedule line.
// Precedence mirrors the firing semantics: an active days-before rule
// overrides the timeframe-based description.
func FormatReminder(r domain.Reminder, t TranslateFunc, use24h bool) string {
	timeStr := FormatTimeForDisplay(r.TimeOrDefault(), use24h)

	if r.IsDaysBefore() {
		daysText := "days"
		if r.DaysBefore == 1 {
			daysText = "day"
		}

		return fmt.Sprintf("%d %s %s %s %s",
			r.DaysBefore,
			translate(t, "reminders.daysBefore", TranslateOptions{DefaultValue: daysText, Count: r.DaysBefore}),
			translate(t, "reminders.beforeDueDate", TranslateOptions{DefaultValue: "before due date"}),
			at(t),
			timeStr,
		)
	}

	switch r.Timeframe {
	case domain.TimeframeSpecificDate:
		return formatSpecificDate(r, t, timeStr)
	case domain.TimeframeEveryDay:
		return fmt.Sprintf("%s %s %s",
			translate(t, "reminders.everyDay", TranslateOptions{DefaultValue: "Every day"}), at(t), timeStr)
	case domain.TimeframeEveryWeek:
		return fmt.Sprintf("%s %s %s %s",
			translate(t, "reminders.every", TranslateOptions{DefaultValue: "Every"}),
			r.WeekdayOrMonday().String(), at(t), timeStr)
	case domain.TimeframeEveryMonth:
		return fmt.Sprintf("%s %s %s",
			translate(t, "reminders.firstOfMonth", TranslateOptions{DefaultValue: "1st of every month"}), at(t), timeStr)
	case domain.TimeframeEveryYear:
		return fmt.Sprintf("%s %s %s",
			translate(t, "reminders.sameDateYearly", TranslateOptions{DefaultValue: "Same date every year"}), at(t), timeStr)
	default:
		return ""
	}
}

func formatSpecificDate(r domain.Reminder, t TranslateFunc, timeStr string) string {
	switch r.SpecificDate {
	case domain.SpecificDateStartOfWeek:
		return fmt.Sprintf("%s %s %s",
			translate(t, "reminders.everyMonday", TranslateOptions{DefaultValue: "Every Monday"}), at(t), timeStr)
	case domain.SpecificDateStartOfMonth:
		return fmt.Sprintf("%s %s %s",
			translate(t, "reminders.firstOfMonth", TranslateOptions{DefaultValue: "1st of every month"}), at(t), timeStr)
	case domain.SpecificDateStartOfYear:
		return fmt.Sprintf("%s %s %s",
			translate(t, "reminders.janFirst", TranslateOptions{DefaultValue: "Jan 1st every year"}), at(t), timeStr)
	}

	if r.SpecificDate == domain.SpecificDateCustom && r.CustomDate != "" {
		if date, err := domain.ParseCustomDate(r.CustomDate); err == nil {
			return fmt.Sprintf("%s %s %s", date.Format("2006-01-02"), at(t), timeStr)
		}
	}

	// No usable date option: degrade to the generic label rather than fail.
	return fmt.Sprintf("%s %s %s",
		translate(t, "reminders.specificDate", TranslateOptions{DefaultValue: "Specific date"}), at(t), timeStr)
}

func at(t TranslateFunc) string {
	return translate(t, "reminders.at", TranslateOptions{DefaultValue: "at"})
}

func translate(t TranslateFunc, key string, opts TranslateOptions) string {
	if t == nil {
		return opts.DefaultValue
	}

	return t(key, opts)
}
