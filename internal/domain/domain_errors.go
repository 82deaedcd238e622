package domain

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")

	ErrInvalidListType     = errors.New("invalid list type")
	ErrInvalidWeekday      = errors.New("invalid weekday: must be 0-6 (Sunday-Saturday)")
	ErrInvalidTimeframe    = errors.New("invalid reminder timeframe")
	ErrInvalidSpecificDate = errors.New("invalid specific date option")

	ErrEmptyTitle = errors.New("task title cannot be empty")

	ErrInvalidTime               = errors.New("time must be a valid HH:mm 24-hour value")
	ErrInvalidCustomDate         = errors.New("custom date must be a valid date")
	ErrPastCustomDate            = errors.New("custom date cannot be in the past")
	ErrNegativeDaysBefore        = errors.New("days before must not be negative")
	ErrDaysBeforeRequiresDueDate = errors.New("days-before reminder requires the task to have a due date")
)
