package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tasks-management/reminder-engine/internal/codec"
	"github.com/tasks-management/reminder-engine/internal/domain"
)

// DaysBeforeJSONB stores reminder offsets as jsonb. Legacy rows hold a bare
// int instead of an array; scanning goes through codec.DaysBeforeList so both
// shapes load.
type DaysBeforeJSONB []int

func (d *DaysBeforeJSONB) Scan(value interface{}) error {
	if value == nil {
		*d = nil

		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DaysBeforeJSONB: expected []byte")
	}

	var list codec.DaysBeforeList
	if err := json.Unmarshal(bytes, &list); err != nil {
		return err
	}

	*d = DaysBeforeJSONB(list)

	return nil
}

func (d DaysBeforeJSONB) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil //nolint:nilnil
	}

	return json.Marshal([]int(d))
}

// ReminderConfigJSONB stores the reminder config payload verbatim. The column
// holds whatever shape a client wrote (array, object, or double-encoded
// string); the codec sorts that out on decode.
type ReminderConfigJSONB json.RawMessage

func (c *ReminderConfigJSONB) Scan(value interface{}) error {
	if value == nil {
		*c = nil

		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ReminderConfigJSONB: expected []byte")
	}

	*c = append((*c)[:0], bytes...)

	return nil
}

func (c ReminderConfigJSONB) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil //nolint:nilnil
	}

	return []byte(c), nil
}

type TaskModel struct {
	ID                 string              `gorm:"column:id;type:uuid;primaryKey"`
	Title              string              `gorm:"column:title;type:varchar(255);not null"`
	Description        string              `gorm:"column:description;type:text;not null;default:''"`
	Completed          bool                `gorm:"column:completed;type:boolean;not null;default:false;index:idx_tasks_completed"`
	CompletedAt        *time.Time          `gorm:"column:completed_at;type:timestamptz"`
	DueDate            *time.Time          `gorm:"column:due_date;type:timestamptz;index:idx_tasks_due_date"`
	SpecificDayOfWeek  *int                `gorm:"column:specific_day_of_week;type:smallint"`
	ReminderDaysBefore DaysBeforeJSONB     `gorm:"column:reminder_days_before;type:jsonb"`
	ReminderConfig     ReminderConfigJSONB `gorm:"column:reminder_config;type:jsonb"`
	ListType           string              `gorm:"column:list_type;type:varchar(32);not null"`
	CreatedAt          time.Time           `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt          time.Time           `gorm:"column:updated_at;type:timestamptz;not null"`
	DeletedAt          gorm.DeletedAt      `gorm:"column:deleted_at;index"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

func (m *TaskModel) ToEntity() (*domain.Task, error) {
	taskID, err := domain.TaskIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	listType, err := domain.NewListType(m.ListType)
	if err != nil {
		return nil, err
	}

	var dayOfWeek *domain.Weekday

	if m.SpecificDayOfWeek != nil {
		w, err := domain.NewWeekday(*m.SpecificDayOfWeek)
		if err != nil {
			return nil, err
		}

		dayOfWeek = &w
	}

	return domain.ReconstituteTask(
		taskID,
		m.Title,
		m.Description,
		m.Completed,
		m.CompletedAt,
		m.DueDate,
		dayOfWeek,
		[]int(m.ReminderDaysBefore),
		json.RawMessage(m.ReminderConfig),
		listType,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromEntity(e *domain.Task) *TaskModel {
	var dayOfWeek *int

	if w := e.SpecificDayOfWeek(); w != nil {
		n := w.Int()
		dayOfWeek = &n
	}

	return &TaskModel{
		ID:                 e.ID().String(),
		Title:              e.Title(),
		Description:        e.Description(),
		Completed:          e.IsCompleted(),
		CompletedAt:        e.CompletedAt(),
		DueDate:            e.DueDate(),
		SpecificDayOfWeek:  dayOfWeek,
		ReminderDaysBefore: DaysBeforeJSONB(e.ReminderDaysBefore()),
		ReminderConfig:     ReminderConfigJSONB(e.ReminderConfig()),
		ListType:           string(e.ListType()),
		CreatedAt:          e.CreatedAt(),
		UpdatedAt:          e.UpdatedAt(),
	}
}
