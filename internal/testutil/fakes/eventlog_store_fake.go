package fakes

import (
	"context"
	"sort"
	"sync"

	"github.com/flowmeta/eventlog-service/internal/models"
	"github.com/flowmeta/eventlog-service/internal/storage"
)

// FakeEventLogStore is an in-memory EventLogStore that mirrors the SQL
// filtering and sorting semantics closely enough for service-level tests.
type FakeEventLogStore struct {
	mu        sync.Mutex
	eventLogs []models.EventLog

	// ListCalls counts ListEventLogs invocations, letting tests assert that
	// rejected requests never reach the store.
	ListCalls int
}

func NewFakeEventLogStore() *FakeEventLogStore {
	return &FakeEventLogStore{}
}

// Seed loads records into the store.
func (f *FakeEventLogStore) Seed(eventLogs ...models.EventLog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eventLogs = append(f.eventLogs, eventLogs...)
}

func (f *FakeEventLogStore) GetEventLog(_ context.Context, eventLogID int64) (*models.EventLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.eventLogs {
		if f.eventLogs[i].ID == eventLogID {
			cpy := f.eventLogs[i]
			return &cpy, nil
		}
	}
	return nil, storage.ErrEventLogNotFound
}

func (f *FakeEventLogStore) ListEventLogs(_ context.Context, filter models.EventLogFilter) ([]models.EventLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++

	matched := make([]models.EventLog, 0)
	for _, eventLog := range f.eventLogs {
		if matches(eventLog, filter) {
			matched = append(matched, eventLog)
		}
	}
	total := int64(len(matched))

	sortEventLogs(matched, filter.OrderColumn, filter.Descending)

	start := filter.Offset
	if start > len(matched) {
		return []models.EventLog{}, total, nil
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func matches(e models.EventLog, f models.EventLogFilter) bool {
	if f.DagID != "" && !strEq(e.DagID, f.DagID) {
		return false
	}
	if f.TaskID != "" && !strEq(e.TaskID, f.TaskID) {
		return false
	}
	if f.RunID != "" && !strEq(e.RunID, f.RunID) {
		return false
	}
	if f.MapIndex != nil && (e.MapIndex == nil || *e.MapIndex != *f.MapIndex) {
		return false
	}
	if f.TryNumber != nil && (e.TryNumber == nil || *e.TryNumber != *f.TryNumber) {
		return false
	}
	if f.Owner != "" && !strEq(e.Owner, f.Owner) {
		return false
	}
	if f.Event != "" && e.Event != f.Event {
		return false
	}
	if len(f.IncludedEvents) > 0 && !contains(f.IncludedEvents, e.Event) {
		return false
	}
	if len(f.ExcludedEvents) > 0 && contains(f.ExcludedEvents, e.Event) {
		return false
	}
	if f.Before != nil && !e.When.Before(*f.Before) {
		return false
	}
	if f.After != nil && !e.When.After(*f.After) {
		return false
	}
	return true
}

func sortEventLogs(eventLogs []models.EventLog, column string, descending bool) {
	sort.SliceStable(eventLogs, func(i, j int) bool {
		a, b := eventLogs[i], eventLogs[j]
		if descending {
			a, b = b, a
		}
		switch column {
		case "dttm":
			return a.When.Before(b.When)
		case "dag_id":
			return strLess(a.DagID, b.DagID)
		case "task_id":
			return strLess(a.TaskID, b.TaskID)
		case "run_id":
			return strLess(a.RunID, b.RunID)
		case "event":
			return a.Event < b.Event
		case "owner":
			return strLess(a.Owner, b.Owner)
		case "extra":
			return strLess(a.Extra, b.Extra)
		default: // id
			return a.ID < b.ID
		}
	})
}

func strEq(s *string, v string) bool {
	return s != nil && *s == v
}

func strLess(a, b *string) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
