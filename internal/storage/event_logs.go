package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/flowmeta/eventlog-service/internal/models"
)

// ErrEventLogNotFound is returned when an event log row is not found.
var ErrEventLogNotFound = errors.New("event log not found")

const eventLogColumns = "id, dttm, dag_id, task_id, run_id, map_index, try_number, event, owner, extra"

// orderableColumns guards the ORDER BY clause: the sort column is resolved
// and validated upstream, but it is interpolated into SQL here, so it must
// never come from user input directly.
var orderableColumns = map[string]bool{
	"id":      true,
	"dttm":    true,
	"dag_id":  true,
	"task_id": true,
	"run_id":  true,
	"event":   true,
	"owner":   true,
	"extra":   true,
}

// GetEventLog retrieves a single event log row by primary key.
func (c *MySQLClient) GetEventLog(ctx context.Context, eventLogID int64) (*models.EventLog, error) {
	query := fmt.Sprintf("SELECT %s FROM log WHERE id = ?", eventLogColumns)

	row := c.db.QueryRowContext(ctx, query, eventLogID)
	eventLog, err := scanEventLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event log: %w", err)
	}

	return eventLog, nil
}

// ListEventLogs retrieves one page of event logs plus the total number of
// rows matching the filter. The count runs against the filtered set before
// limit/offset are applied; count and page are two independent reads, so a
// concurrent insert can make them disagree by a small margin.
func (c *MySQLClient) ListEventLogs(ctx context.Context, filter models.EventLogFilter) ([]models.EventLog, int64, error) {
	whereClause, args := buildEventLogPredicates(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM log %s", whereClause)
	var totalEntries int64
	if err := c.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalEntries); err != nil {
		return nil, 0, fmt.Errorf("count event logs: %w", err)
	}

	orderClause, err := buildOrderClause(filter.OrderColumn, filter.Descending)
	if err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(
		"SELECT %s FROM log %s %s LIMIT ? OFFSET ?",
		eventLogColumns, whereClause, orderClause,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := c.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list event logs: %w", err)
	}
	defer rows.Close()

	eventLogs := []models.EventLog{}
	for rows.Next() {
		eventLog, err := scanEventLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event log: %w", err)
		}
		eventLogs = append(eventLogs, *eventLog)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate event logs: %w", err)
	}

	return eventLogs, totalEntries, nil
}

// buildEventLogPredicates assembles the WHERE clause for a listing query.
// Filters are AND-joined; an unset filter contributes no clause at all.
func buildEventLogPredicates(filter models.EventLogFilter) (string, []interface{}) {
	whereClauses := []string{}
	args := []interface{}{}

	if filter.DagID != "" {
		whereClauses = append(whereClauses, "dag_id = ?")
		args = append(args, filter.DagID)
	}
	if filter.TaskID != "" {
		whereClauses = append(whereClauses, "task_id = ?")
		args = append(args, filter.TaskID)
	}
	if filter.RunID != "" {
		whereClauses = append(whereClauses, "run_id = ?")
		args = append(args, filter.RunID)
	}
	if filter.MapIndex != nil {
		whereClauses = append(whereClauses, "map_index = ?")
		args = append(args, *filter.MapIndex)
	}
	if filter.TryNumber != nil {
		whereClauses = append(whereClauses, "try_number = ?")
		args = append(args, *filter.TryNumber)
	}
	if filter.Owner != "" {
		whereClauses = append(whereClauses, "owner = ?")
		args = append(args, filter.Owner)
	}
	if filter.Event != "" {
		whereClauses = append(whereClauses, "event = ?")
		args = append(args, filter.Event)
	}
	if len(filter.IncludedEvents) > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("event IN (%s)", placeholders(len(filter.IncludedEvents))))
		for _, event := range filter.IncludedEvents {
			args = append(args, event)
		}
	}
	if len(filter.ExcludedEvents) > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("event NOT IN (%s)", placeholders(len(filter.ExcludedEvents))))
		for _, event := range filter.ExcludedEvents {
			args = append(args, event)
		}
	}
	if filter.Before != nil {
		whereClauses = append(whereClauses, "dttm < ?")
		args = append(args, *filter.Before)
	}
	if filter.After != nil {
		whereClauses = append(whereClauses, "dttm > ?")
		args = append(args, *filter.After)
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	return whereClause, args
}

func buildOrderClause(column string, descending bool) (string, error) {
	if !orderableColumns[column] {
		return "", fmt.Errorf("column %q is not orderable", column)
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction), nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEventLog(row scanner) (*models.EventLog, error) {
	var eventLog models.EventLog
	var dagID, taskID, runID, owner, extra sql.NullString
	var mapIndex, tryNumber sql.NullInt64

	err := row.Scan(
		&eventLog.ID,
		&eventLog.When,
		&dagID,
		&taskID,
		&runID,
		&mapIndex,
		&tryNumber,
		&eventLog.Event,
		&owner,
		&extra,
	)
	if err != nil {
		return nil, err
	}

	if dagID.Valid {
		eventLog.DagID = &dagID.String
	}
	if taskID.Valid {
		eventLog.TaskID = &taskID.String
	}
	if runID.Valid {
		eventLog.RunID = &runID.String
	}
	if mapIndex.Valid {
		idx := int(mapIndex.Int64)
		eventLog.MapIndex = &idx
	}
	if tryNumber.Valid {
		try := int(tryNumber.Int64)
		eventLog.TryNumber = &try
	}
	if owner.Valid {
		eventLog.Owner = &owner.String
	}
	if extra.Valid {
		eventLog.Extra = &extra.String
	}

	return &eventLog, nil
}
