package domain

import (
	"encoding/json"
	"time"
)

// Task carries the occurrence context and the persisted reminder encoding of
// one to-do item. The reminder fields are kept in their backend form here;
// conversion to the normalized list is the codec's job.
type Task struct {
	id                TaskID
	title             string
	description       string
	completed         bool
	completedAt       *time.Time
	dueDate           *time.Time
	specificDayOfWeek *Weekday
	daysBefore        []int
	reminderConfig    json.RawMessage
	listType          ListType
	createdAt         time.Time
	updatedAt         time.Time
}

func NewTask(title, description string, listType ListType, dueDate *time.Time, specificDayOfWeek *Weekday) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	if _, err := NewListType(string(listType)); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Task{
		id:                NewTaskID(),
		title:             title,
		description:       description,
		dueDate:           dueDate,
		specificDayOfWeek: specificDayOfWeek,
		listType:          listType,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstituteTask(
	id TaskID,
	title string,
	description string,
	completed bool,
	completedAt *time.Time,
	dueDate *time.Time,
	specificDayOfWeek *Weekday,
	daysBefore []int,
	reminderConfig json.RawMessage,
	listType ListType,
	createdAt time.Time,
	updatedAt time.Time,
) *Task {
	return &Task{
		id:                id,
		title:             title,
		description:       description,
		completed:         completed,
		completedAt:       completedAt,
		dueDate:           dueDate,
		specificDayOfWeek: specificDayOfWeek,
		daysBefore:        daysBefore,
		reminderConfig:    reminderConfig,
		listType:          listType,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// SetReminderEncoding replaces the persisted reminder fields with a freshly
// encoded set. An empty daysBefore slice is kept as [] rather than nil so the
// cleared state is representable; a nil reminderConfig means "field cleared".
func (t *Task) SetReminderEncoding(daysBefore []int, specificDayOfWeek *Weekday, reminderConfig json.RawMessage) {
	if daysBefore == nil {
		daysBefore = []int{}
	}

	t.daysBefore = daysBefore
	t.specificDayOfWeek = specificDayOfWeek
	t.reminderConfig = reminderConfig
	t.updatedAt = time.Now()
}

func (t *Task) Complete() {
	if t.completed {
		return
	}

	now := time.Now()
	t.completed = true
	t.completedAt = &now
	t.updatedAt = now
}

func (t *Task) ID() TaskID {
	return t.id
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) IsCompleted() bool {
	return t.completed
}

func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

func (t *Task) DueDate() *time.Time {
	return t.dueDate
}

func (t *Task) SpecificDayOfWeek() *Weekday {
	return t.specificDayOfWeek
}

func (t *Task) ReminderDaysBefore() []int {
	return t.daysBefore
}

func (t *Task) ReminderConfig() json.RawMessage {
	return t.reminderConfig
}

func (t *Task) ListType() ListType {
	return t.listType
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}
