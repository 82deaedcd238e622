package codec

import (
	"bytes"
	"encoding/json"

	"github.com/tasks-management/reminder-engine/internal/domain"
)

// DaysBeforeList is the persisted reminderDaysBefore payload. Current records
// store an int array; old records store a bare int. Anything else degrades to
// an empty list, never an error: reminder decoding runs on every task load and
// a corrupt record must not break the whole list.
type DaysBeforeList []int

func (d *DaysBeforeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = nil

		return nil
	}

	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		*d = list

		return nil
	}

	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*d = DaysBeforeList{single}

		return nil
	}

	*d = nil

	return nil
}

func (d DaysBeforeList) MarshalJSON() ([]byte, error) {
	if d == nil {
		return json.Marshal([]int{})
	}

	return json.Marshal([]int(d))
}

// reminderJSON is the wire shape of one reminderConfig entry, shared by the
// web and mobile clients.
type reminderJSON struct {
	ID           string `json:"id,omitempty"`
	Timeframe    string `json:"timeframe"`
	Time         string `json:"time,omitempty"`
	SpecificDate string `json:"specificDate,omitempty"`
	CustomDate   string `json:"customDate,omitempty"`
	DayOfWeek    *int   `json:"dayOfWeek,omitempty"`
	DaysBefore   int    `json:"daysBefore,omitempty"`
	HasAlarm     bool   `json:"hasAlarm,omitempty"`
	Location     string `json:"location,omitempty"`
}

func (r reminderJSON) toDescriptor() (domain.Reminder, bool) {
	timeframe, err := domain.NewTimeframe(r.Timeframe)
	if err != nil {
		return domain.Reminder{}, false
	}

	out := domain.Reminder{
		ID:         r.ID,
		Timeframe:  timeframe,
		Time:       r.Time,
		CustomDate: r.CustomDate,
		DaysBefore: r.DaysBefore,
		HasAlarm:   r.HasAlarm,
		Location:   r.Location,
	}

	if r.SpecificDate != "" {
		specificDate, err := domain.NewSpecificDate(r.SpecificDate)
		if err != nil {
			return domain.Reminder{}, false
		}

		out.SpecificDate = specificDate
	}

	if r.DayOfWeek != nil {
		weekday, err := domain.NewWeekday(*r.DayOfWeek)
		if err != nil {
			return domain.Reminder{}, false
		}

		out.DayOfWeek = &weekday
	}

	return out, true
}

func fromDescriptor(r domain.Reminder) reminderJSON {
	out := reminderJSON{
		ID:           r.ID,
		Timeframe:    string(r.Timeframe),
		Time:         r.Time,
		SpecificDate: string(r.SpecificDate),
		CustomDate:   r.CustomDate,
		DaysBefore:   r.DaysBefore,
		HasAlarm:     r.HasAlarm,
		Location:     r.Location,
	}

	if r.DayOfWeek != nil {
		day := r.DayOfWeek.Int()
		out.DayOfWeek = &day
	}

	return out
}

// parseConfig normalizes the polymorphic reminderConfig payload: a JSON array
// of descriptors, a single descriptor object, a JSON-encoded string of either,
// or null. Malformed payloads contribute nothing.
func parseConfig(raw json.RawMessage) []domain.Reminder {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	// A string payload is a JSON document encoded once more; unwrap and retry.
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil
		}

		return parseConfig(json.RawMessage(inner))
	}

	var entries []reminderJSON

	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil
		}
	case '{':
		var single reminderJSON
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}

		entries = []reminderJSON{single}
	default:
		return nil
	}

	out := make([]domain.Reminder, 0, len(entries))

	for _, entry := range entries {
		descriptor, ok := entry.toDescriptor()
		if !ok {
			continue
		}

		out = append(out, descriptor)
	}

	return out
}
