package eventlogs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flowmeta/eventlog-service/internal/models"
	"github.com/flowmeta/eventlog-service/internal/storage"
	"go.uber.org/zap"
)

// timestampFormats are tried in order when parsing before/after bounds.
var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Service provides read-only query logic over the orchestrator's event log.
type Service struct {
	store        EventLogStore
	logger       *zap.Logger
	defaultLimit int
	maxLimit     int
}

// NewService creates an event log query service. defaultLimit fills in a
// missing page size; maxLimit silently caps oversized ones.
func NewService(store EventLogStore, logger *zap.Logger, defaultLimit, maxLimit int) *Service {
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &Service{
		store:        store,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// GetEventLog retrieves a single event log entry by id.
func (s *Service) GetEventLog(ctx context.Context, eventLogID int64) (*models.EventLogResponse, error) {
	eventLog, err := s.store.GetEventLog(ctx, eventLogID)
	if err != nil {
		if errors.Is(err, storage.ErrEventLogNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get event log",
			zap.Int64("event_log_id", eventLogID),
			zap.Error(err))
		return nil, fmt.Errorf("get event log: %w", err)
	}

	resp := buildEventLogResponse(eventLog)
	return &resp, nil
}

// ListEventLogs validates the query parameters, assembles the storage filter,
// and returns one page of matches plus the pre-pagination total. Validation
// runs entirely before the store is touched, so a bad sort key or timestamp
// never costs a query.
func (s *Service) ListEventLogs(ctx context.Context, query models.ListEventLogsQuery) (*models.EventLogCollection, error) {
	filter, err := s.buildFilter(query)
	if err != nil {
		return nil, err
	}

	eventLogs, totalEntries, err := s.store.ListEventLogs(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list event logs",
			zap.String("dag_id", query.DagID),
			zap.String("order_by", query.OrderBy),
			zap.Error(err))
		return nil, fmt.Errorf("list event logs: %w", err)
	}

	responses := make([]models.EventLogResponse, 0, len(eventLogs))
	for i := range eventLogs {
		responses = append(responses, buildEventLogResponse(&eventLogs[i]))
	}

	s.logger.Debug("listed event logs",
		zap.Int("count", len(responses)),
		zap.Int64("total_entries", totalEntries))

	return &models.EventLogCollection{
		EventLogs:    responses,
		TotalEntries: totalEntries,
	}, nil
}

func (s *Service) buildFilter(query models.ListEventLogsQuery) (models.EventLogFilter, error) {
	orderBy := query.OrderBy
	if orderBy == "" {
		orderBy = DefaultOrderBy
	}
	column, descending, err := resolveOrderBy(orderBy)
	if err != nil {
		return models.EventLogFilter{}, err
	}

	before, err := parseTimestampFilter("before", query.Before)
	if err != nil {
		return models.EventLogFilter{}, err
	}
	after, err := parseTimestampFilter("after", query.After)
	if err != nil {
		return models.EventLogFilter{}, err
	}

	limit := query.Limit
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		s.logger.Warn("requested page size above maximum, capping",
			zap.Int("requested", limit),
			zap.Int("maximum", s.maxLimit))
		limit = s.maxLimit
	}

	return models.EventLogFilter{
		DagID:          query.DagID,
		TaskID:         query.TaskID,
		RunID:          query.RunID,
		MapIndex:       query.MapIndex,
		TryNumber:      query.TryNumber,
		Owner:          query.Owner,
		Event:          query.Event,
		IncludedEvents: splitEventNames(query.IncludedEvents),
		ExcludedEvents: splitEventNames(query.ExcludedEvents),
		Before:         before,
		After:          after,
		OrderColumn:    column,
		Descending:     descending,
		Limit:          limit,
		Offset:         query.Offset,
	}, nil
}

func splitEventNames(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

func parseTimestampFilter(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, format := range timestampFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, NewValidationError("invalid %s timestamp: %q", name, value)
}

func buildEventLogResponse(eventLog *models.EventLog) models.EventLogResponse {
	return models.EventLogResponse{
		ID:        eventLog.ID,
		When:      eventLog.When,
		DagID:     eventLog.DagID,
		TaskID:    eventLog.TaskID,
		RunID:     eventLog.RunID,
		MapIndex:  eventLog.MapIndex,
		TryNumber: eventLog.TryNumber,
		Event:     eventLog.Event,
		Owner:     eventLog.Owner,
		Extra:     eventLog.Extra,
	}
}
