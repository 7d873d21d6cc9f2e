package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/flowmeta/eventlog-service/internal/api/response"
	"github.com/flowmeta/eventlog-service/internal/eventlogs"
	"github.com/flowmeta/eventlog-service/internal/logging"
	"github.com/flowmeta/eventlog-service/internal/models"
	"github.com/flowmeta/eventlog-service/internal/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventLogQueryService defines the query operations the handler depends on.
type EventLogQueryService interface {
	GetEventLog(ctx context.Context, eventLogID int64) (*models.EventLogResponse, error)
	ListEventLogs(ctx context.Context, query models.ListEventLogsQuery) (*models.EventLogCollection, error)
}

// EventLogHandler handles event log query requests.
type EventLogHandler struct {
	logger  logging.Logger
	service EventLogQueryService
}

// NewEventLogHandler creates a new event log handler.
func NewEventLogHandler(service EventLogQueryService, logger logging.Logger) *EventLogHandler {
	return &EventLogHandler{
		logger:  logger.With(zap.String("handler", "event_log")),
		service: service,
	}
}

// GetEventLog godoc
// @Summary Get a single event log entry
// @Description Retrieves one audit log record by its identifier
// @Tags EventLogs
// @Produce json
// @Param event_log_id path int true "Event log ID"
// @Success 200 {object} models.EventLogResponse
// @Failure 400 {object} response.ErrorResponse "Invalid event log ID"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 404 {object} response.ErrorResponse "Event log not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/eventLogs/{event_log_id} [get]
func (h *EventLogHandler) GetEventLog(c *gin.Context) {
	eventLogID, err := strconv.ParseInt(c.Param("event_log_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid event log id", err.Error())
		return
	}

	eventLog, err := h.service.GetEventLog(c.Request.Context(), eventLogID)
	if err != nil {
		if errors.Is(err, storage.ErrEventLogNotFound) {
			response.NotFound(c, "Event Log not found")
			return
		}
		h.logger.Error("get event log failed",
			zap.Int64("event_log_id", eventLogID),
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.OK(c, eventLog)
}

// ListEventLogs godoc
// @Summary List event log entries
// @Description Retrieves audit log records matching the supplied filters, sorted and paginated. total_entries reflects all matches before pagination.
// @Tags EventLogs
// @Produce json
// @Param dag_id query string false "Filter by workflow ID"
// @Param task_id query string false "Filter by task ID"
// @Param run_id query string false "Filter by run ID"
// @Param map_index query int false "Filter by mapped task index (0 is a valid value)"
// @Param try_number query int false "Filter by task try number"
// @Param owner query string false "Filter by acting principal"
// @Param event query string false "Filter by event name"
// @Param included_events query string false "Comma-separated event names to include"
// @Param excluded_events query string false "Comma-separated event names to exclude"
// @Param before query string false "Only entries strictly before this timestamp (RFC 3339)"
// @Param after query string false "Only entries strictly after this timestamp (RFC 3339)"
// @Param limit query int false "Page size, capped at the configured maximum" default(100) minimum(1)
// @Param offset query int false "Zero-based offset into the sorted result set" default(0) minimum(0)
// @Param order_by query string false "Sort field; prefix with - for descending" default(event_log_id)
// @Success 200 {object} models.EventLogCollection
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /api/v1/eventLogs [get]
func (h *EventLogHandler) ListEventLogs(c *gin.Context) {
	var query models.ListEventLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warn("invalid list event logs query",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "invalid query parameters", err.Error())
		return
	}

	collection, err := h.service.ListEventLogs(c.Request.Context(), query)
	if err != nil {
		var validationErr eventlogs.ValidationError
		if errors.As(err, &validationErr) {
			response.BadRequest(c, "validation failed", validationErr.Error())
			return
		}
		h.logger.Error("list event logs failed",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "internal server error")
		return
	}

	response.OK(c, collection)
}
