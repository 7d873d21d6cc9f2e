package eventlogs

import "strings"

// DefaultOrderBy is applied when the caller does not supply a sort key.
const DefaultOrderBy = "event_log_id"

// sortFieldAliases maps logical sort field names to physical column names.
var sortFieldAliases = map[string]string{
	"event_log_id": "id",
	"when":         "dttm",
}

// allowedSortFields is the set of logical field names callers may sort by.
// Anything else is a usage error, rejected before a query runs.
var allowedSortFields = map[string]bool{
	"event_log_id": true,
	"when":         true,
	"dag_id":       true,
	"task_id":      true,
	"run_id":       true,
	"event":        true,
	"owner":        true,
	"extra":        true,
}

// resolveOrderBy validates a caller-supplied sort key and translates it to a
// physical column plus direction. A leading "-" requests descending order.
func resolveOrderBy(orderBy string) (column string, descending bool, err error) {
	field := orderBy
	if strings.HasPrefix(field, "-") {
		descending = true
		field = field[1:]
	}

	if !allowedSortFields[field] {
		return "", false, NewValidationError("ordering with %q is disallowed or the attribute does not exist on the model", orderBy)
	}

	column = field
	if physical, ok := sortFieldAliases[field]; ok {
		column = physical
	}
	return column, descending, nil
}
