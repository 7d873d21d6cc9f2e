package models

import "time"

// EventLog represents one audit entry from the orchestration metadata store.
// Rows are written by the orchestrator's own instrumentation; this service
// only ever reads them.
type EventLog struct {
	ID        int64     `json:"event_log_id"`
	When      time.Time `json:"when"`
	DagID     *string   `json:"dag_id"`
	TaskID    *string   `json:"task_id"`
	RunID     *string   `json:"run_id"`
	MapIndex  *int      `json:"map_index"`
	TryNumber *int      `json:"try_number"`
	Event     string    `json:"event"`
	Owner     *string   `json:"owner"`
	Extra     *string   `json:"extra"`
}

// EventLogResponse represents the wire shape of a single event log entry.
type EventLogResponse struct {
	ID        int64     `json:"event_log_id" example:"345"`
	When      time.Time `json:"when" example:"2025-11-05T10:30:00Z"`
	DagID     *string   `json:"dag_id" example:"example_dag"`
	TaskID    *string   `json:"task_id" example:"transform"`
	RunID     *string   `json:"run_id" example:"scheduled__2025-11-05T10:00:00"`
	MapIndex  *int      `json:"map_index" example:"0"`
	TryNumber *int      `json:"try_number" example:"1"`
	Event     string    `json:"event" example:"task_instance_success"`
	Owner     *string   `json:"owner" example:"airflow"`
	Extra     *string   `json:"extra"`
} // @name EventLogResponse

// EventLogCollection is one page of event logs plus the count of every row
// matching the filters, taken before limit/offset were applied.
type EventLogCollection struct {
	EventLogs    []EventLogResponse `json:"event_logs"`
	TotalEntries int64              `json:"total_entries"`
} // @name EventLogCollection

// ListEventLogsQuery represents query parameters for listing event logs.
// Every filter is optional; an absent filter applies no constraint.
// MapIndex and TryNumber are pointers so that zero is a real filter value
// and not confused with "not provided".
type ListEventLogsQuery struct {
	DagID          string `form:"dag_id" example:"example_dag"`
	TaskID         string `form:"task_id" example:"transform"`
	RunID          string `form:"run_id" example:"scheduled__2025-11-05T10:00:00"`
	MapIndex       *int   `form:"map_index" example:"0"`
	TryNumber      *int   `form:"try_number" example:"1"`
	Owner          string `form:"owner" example:"airflow"`
	Event          string `form:"event" example:"task_instance_success"`
	IncludedEvents string `form:"included_events" example:"cli_task_run,trigger"`
	ExcludedEvents string `form:"excluded_events" example:"paused"`
	Before         string `form:"before" example:"2025-11-05T12:00:00Z"`
	After          string `form:"after" example:"2025-11-05T00:00:00Z"`
	Limit          int    `form:"limit" binding:"omitempty,min=1" example:"100"`
	Offset         int    `form:"offset" binding:"omitempty,min=0" example:"0"`
	OrderBy        string `form:"order_by" example:"-event_log_id"`
} // @name ListEventLogsQuery

// EventLogFilter is the storage-level filter built by the service once all
// query parameters have been validated and normalized.
type EventLogFilter struct {
	DagID          string
	TaskID         string
	RunID          string
	MapIndex       *int
	TryNumber      *int
	Owner          string
	Event          string
	IncludedEvents []string
	ExcludedEvents []string
	Before         *time.Time
	After          *time.Time

	// OrderColumn is the physical column name, already resolved from the
	// logical sort field and checked against the allow-list.
	OrderColumn string
	Descending  bool

	Limit  int
	Offset int
}
