package eventlogs

import (
	"context"

	"github.com/flowmeta/eventlog-service/internal/models"
)

// EventLogStore defines the persistence methods required by the query service.
type EventLogStore interface {
	GetEventLog(ctx context.Context, eventLogID int64) (*models.EventLog, error)
	ListEventLogs(ctx context.Context, filter models.EventLogFilter) ([]models.EventLog, int64, error)
}
