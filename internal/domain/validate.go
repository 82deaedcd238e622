package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validation helpers for the reminder editing form. Unlike the codec, which
// tolerates whatever it finds in the database, these reject bad input before
// it is persisted.

// ValidateTime checks that s is an HH:mm 24-hour time.
func ValidateTime(s string) error {
	if _, _, err := parseTime(s); err != nil {
		return err
	}

	return nil
}

// NormalizeTime returns s as a zero-padded "HH:mm" string ("9:5" -> "09:05").
func NormalizeTime(s string) (string, error) {
	hours, minutes, err := parseTime(s)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

func parseTime(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return hours, minutes, nil
}

// ValidateCustomReminderDate checks that s parses as a date and does not fall
// before today's local calendar day.
func ValidateCustomReminderDate(s string) error {
	date, err := ParseCustomDate(s)
	if err != nil {
		return err
	}

	if StartOfDay(date).Before(StartOfDay(time.Now())) {
		return ErrPastCustomDate
	}

	return nil
}

// ParseCustomDate accepts the two shapes custom dates are stored in: a full
// RFC 3339 date-time or a bare "2006-01-02" date.
func ParseCustomDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidCustomDate)
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCustomDate, s)
	}

	return t, nil
}

// ValidateDaysBefore rejects negative offsets. Zero is allowed and means
// "on the due date itself".
func ValidateDaysBefore(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDaysBefore, n)
	}

	return nil
}
